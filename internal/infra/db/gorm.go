package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect は単一ファイルDBを開いて *gorm.DB を返す。
// ファイルが無ければ作られる。同時書き込みの直列化はsqlite側に任せる。
func Connect(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
