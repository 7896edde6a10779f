// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build purego_sqlite

package wordstore

import (
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	driverType = "purego"
)

func dsn(path string) string {
	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
