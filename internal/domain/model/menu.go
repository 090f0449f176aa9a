package model

import "github.com/shopspring/decimal"

// MenuItemは品名と単価のペア。
type MenuItem struct {
	Name  string
	Price decimal.Decimal
}

// Menuはプロセス起動時に固定されるカフェメニュー。
// 表示順・集計順を揃えるためmapではなくsliceで持つ。
type Menu []MenuItem

// DefaultMenuは全セッション共通のメニューを返す。ユーザーからは編集できない。
func DefaultMenu() Menu {
	return Menu{
		{Name: "Espresso", Price: decimal.RequireFromString("2.50")},
		{Name: "Latte", Price: decimal.RequireFromString("3.00")},
		{Name: "Cappuccino", Price: decimal.RequireFromString("3.20")},
		{Name: "ColdBrew", Price: decimal.RequireFromString("3.50")},
		{Name: "Coffee", Price: decimal.RequireFromString("2.50")},
		{Name: "Tea", Price: decimal.RequireFromString("2.00")},
		{Name: "Cake", Price: decimal.RequireFromString("3.50")},
		{Name: "Sandwich", Price: decimal.RequireFromString("5.00")},
		{Name: "Juice", Price: decimal.RequireFromString("3.00")},
		{Name: "Pasta", Price: decimal.RequireFromString("6.00")},
	}
}

// Priceは品名から単価を引く。無い品名はfalse。
func (m Menu) Price(name string) (decimal.Decimal, bool) {
	for _, item := range m {
		if item.Name == name {
			return item.Price, true
		}
	}
	return decimal.Zero, false
}
