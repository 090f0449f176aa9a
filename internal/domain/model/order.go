package model

import "github.com/shopspring/decimal"

type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string          `gorm:"not null" json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Cashier       string          `gorm:"not null" json:"cashier"`
	Items         string          `gorm:"not null" json:"items"`
	Total         decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Timestamp     string          `gorm:"not null" json:"timestamp"` // "YYYY-MM-DD HH:MM:SS"（ローカル時刻）
}
