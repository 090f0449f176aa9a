package session

// クライアント側に置く署名付きセッション。
// サーバーはHS256で署名したcookieを1枚配り、毎リクエストで検証して復元する。
// ログイン状態（username/full_name）と、注文途中の顧客情報、
// 次のページで一度だけ出すflashをまとめて持つ。

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "session"
	contextKey = "session"
)

// Flashは次に描画するページで一度だけ表示する通知
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"` // success / warning / danger
}

// PendingOrderは注文開始から確定までの間だけ存在する途中状態。
// nilなら注文は始まっていない。
type PendingOrder struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// Sessionはブラウザ1つ分の状態
type Session struct {
	Username string
	FullName string
	Pending  *PendingOrder
	Flashes  []Flash
}

// LoggedInはusernameが入っているかどうか
func (s *Session) LoggedIn() bool {
	return s.Username != ""
}

// SetUserはログイン成功時に呼ぶ
func (s *Session) SetUser(username string, fullName string) {
	s.Username = username
	s.FullName = fullName
}

// ClearUserはログアウト。注文途中の状態には触らない。
func (s *Session) ClearUser() {
	s.Username = ""
	s.FullName = ""
}

// StartOrderは顧客情報を預けて注文途中状態にする
func (s *Session) StartOrder(customerName string, customerPhone string) {
	s.Pending = &PendingOrder{
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
	}
}

// PendingCustomerは途中状態の顧客情報を返す。
// 注文が始まっていなければ空文字のペア。
func (s *Session) PendingCustomer() (string, string) {
	if s.Pending == nil {
		return "", ""
	}
	return s.Pending.CustomerName, s.Pending.CustomerPhone
}

// FinishOrderは注文確定後に途中状態だけ消す（ログイン状態は残す）
func (s *Session) FinishOrder() {
	s.Pending = nil
}

func (s *Session) AddFlash(message string, category string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
}

// TakeFlashesは溜まったflashを取り出して空にする。
// 呼んだ後にSaveしないと同じflashがもう一度出る。
func (s *Session) TakeFlashes() []Flash {
	f := s.Flashes
	s.Flashes = nil
	return f
}

// Managerはセッションcookieの署名と検証を行う
type Manager struct {
	secret []byte
	secure bool
}

func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// cookieに入れるclaims
type sessionClaims struct {
	Username string        `json:"username,omitempty"`
	FullName string        `json:"full_name,omitempty"`
	Pending  *PendingOrder `json:"pending_order,omitempty"`
	Flashes  []Flash       `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Loadはcookieを検証してSessionを復元する。
// cookieが無い・署名が不正・形式が壊れている場合はエラーにせず空セッションを返す。
func (m *Manager) Load(c echo.Context) *Session {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return &Session{}
	}

	return &Session{
		Username: claims.Username,
		FullName: claims.FullName,
		Pending:  claims.Pending,
		Flashes:  claims.Flashes,
	}
}

// Saveはセッションを署名してcookieへ書き戻す。
func (m *Manager) Save(c echo.Context, s *Session) error {
	now := time.Now()

	claims := sessionClaims{
		Username: s.Username,
		FullName: s.FullName,
		Pending:  s.Pending,
		Flashes:  s.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Middlewareはリクエストごとにセッションを復元してcontextへ入れる
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKey, m.Load(c))
			return next(c)
		}
	}
}

// Fromはcontextからセッションを取り出す。
// Middlewareを通っていなければ空セッション。
func From(c echo.Context) *Session {
	if s, ok := c.Get(contextKey).(*Session); ok {
		return s
	}
	return &Session{}
}
