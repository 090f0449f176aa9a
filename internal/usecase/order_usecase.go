package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cafepos/internal/domain/model"
	"cafepos/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	// 注文開始に顧客名が無い
	ErrCustomerNameRequired = errors.New("customer name is required")
	// 数量が全部0（または全部欠落）
	ErrNoItems = errors.New("no items selected")
)

type OrderUsecase struct {
	orders repository.OrderRepository
	menu   model.Menu
	clock  Clock
}

// DI
func NewOrderUsecase(orders repository.OrderRepository, menu model.Menu, clock Clock) *OrderUsecase {
	return &OrderUsecase{orders: orders, menu: menu, clock: clock}
}

// StartOrderは注文開始の検証。顧客名が空ならエラー。
// 通れば顧客情報はセッションに預けられ、品選び画面へ進む。
func (u *OrderUsecase) StartOrder(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameRequired
	}
	return nil
}

// Menuは品選び画面に渡すメニューを返す。
func (u *OrderUsecase) Menu() model.Menu {
	return u.menu
}

// 注文1行分
type OrderLine struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal
}

type PlaceOrderInput struct {
	Cashier       string
	CustomerName  string
	CustomerPhone string
	// 品名→フォームの生の値。整数にならない値は0扱いにする。
	RawQuantities map[string]string
}

// 請求画面に渡す値
type PlaceOrderOutput struct {
	OrderID       int64
	Lines         []OrderLine
	Total         decimal.Decimal
	Items         string
	Timestamp     string
	CustomerName  string
	CustomerPhone string
	Cashier       string
}

// PlaceOrderは数量を集計して合計を出し、注文を1件保存する。
// 顧客情報はここでは検証しない。/select_menuを経由していないと空のまま保存される。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	var out PlaceOrderOutput

	// メニュー定義順に数量を読む。欠落・非整数はエラーにせず0扱い。
	lines := make([]OrderLine, 0, len(u.menu))
	total := decimal.Zero

	for _, item := range u.menu {
		qty, err := strconv.Atoi(in.RawQuantities[item.Name])
		if err != nil {
			qty = 0
		}
		if qty <= 0 {
			continue
		}

		sub := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, OrderLine{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Subtotal: sub,
		})
		total = total.Add(sub)
	}

	// 1品も選ばれていない注文は作らない
	if len(lines) == 0 {
		return out, ErrNoItems
	}

	// "Espresso x 2; Latte x 1" の形式（メニュー定義順）
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s x %d", l.Name, l.Quantity))
	}
	items := strings.Join(parts, "; ")

	ts := u.clock.Now().Format("2006-01-02 15:04:05")

	order := &model.Order{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Cashier:       in.Cashier,
		Items:         items,
		Total:         total,
		Timestamp:     ts,
	}

	// レスポンスを返す前にコミットまで済ませる
	orderID, err := u.orders.Create(ctx, order)
	if err != nil {
		return out, err
	}

	out = PlaceOrderOutput{
		OrderID:       orderID,
		Lines:         lines,
		Total:         total,
		Items:         items,
		Timestamp:     ts,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Cashier:       in.Cashier,
	}
	return out, nil
}

// ListOrdersは全注文を新しい順で返す（レポート用）。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}
