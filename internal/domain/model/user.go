package model

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // 平文のまま保存する（ログインは完全一致比較）
	FullName string
}
