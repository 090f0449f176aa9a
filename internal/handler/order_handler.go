package handler

import (
	"errors"
	"net/http"

	"cafepos/internal/session"
	"cafepos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc       *usecase.OrderUsecase
	sessions *session.Manager
}

// DIコンストラクタ
func NewOrderHandler(uc *usecase.OrderUsecase, sessions *session.Manager) *OrderHandler {
	return &OrderHandler{uc: uc, sessions: sessions}
}

// IndexはGET / のハンドラ。新規注文の顧客情報入力画面。
func (h *OrderHandler) Index(c echo.Context) error {
	return render(c, h.sessions, "index", nil)
}

// SelectMenuはPOST /select_menu のハンドラ。
// 顧客情報をセッションに預けて品選び画面を出す。
func (h *OrderHandler) SelectMenu(c echo.Context) error {
	customerName := c.FormValue("customer_name")
	customerPhone := c.FormValue("customer_phone")

	sess := session.From(c)

	if err := h.uc.StartOrder(customerName); err != nil {
		// 顧客名なしでは始めない。セッションも変えない。
		sess.AddFlash("Customer name is required to start an order.", "warning")
		if err := h.sessions.Save(c, sess); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	sess.StartOrder(customerName, customerPhone)

	return render(c, h.sessions, "menu", map[string]interface{}{
		"Menu":         h.uc.Menu(),
		"CustomerName": customerName,
	})
}

// SubmitOrderはPOST /submit_order のハンドラ。
// 数量を集計して注文を保存し、請求画面を出す。
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	sess := session.From(c)

	// メニューの品名ごとにフォームの生の値を拾う
	raw := map[string]string{}
	for _, item := range h.uc.Menu() {
		raw[item.Name] = c.FormValue(item.Name)
	}

	// /select_menuを経ていなければ顧客情報は空のまま
	customerName, customerPhone := sess.PendingCustomer()

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Cashier:       sess.Username,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		RawQuantities: raw,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoItems) {
			// 何も書き込まずにトップへ戻す。注文途中状態は残す。
			sess.AddFlash("Please select at least one item to order.", "warning")
			if err := h.sessions.Save(c, sess); err != nil {
				return err
			}
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	// 注文が確定したので途中状態をセッションから消す（ログイン状態は残す）
	sess.FinishOrder()
	sess.AddFlash("Order placed successfully!", "success")

	return render(c, h.sessions, "bill", map[string]interface{}{
		"Lines":         out.Lines,
		"Total":         out.Total,
		"Timestamp":     out.Timestamp,
		"CustomerName":  out.CustomerName,
		"CustomerPhone": out.CustomerPhone,
		"Cashier":       out.Cashier,
	})
}

// ReportはGET /report のハンドラ。全注文を新しい順で一覧する。
func (h *OrderHandler) Report(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return render(c, h.sessions, "report", map[string]interface{}{
		"Orders": orders,
	})
}
