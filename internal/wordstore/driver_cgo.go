// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !purego_sqlite

package wordstore

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName = "sqlite3"
	driverType = "cgo"
)

func dsn(path string) string {
	return path + "?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000"
}
