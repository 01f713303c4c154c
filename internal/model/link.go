package model

import "time"

const (
	// MaxDestinationLength ограничивает длину целевого URL
	MaxDestinationLength = 2048
	// MaxCodeLength ограничивает длину короткого кода
	MaxCodeLength = 16
)

// Code короткий алиас ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// reservedCodes совпадают с фиксированными путями HTTP роутера
// и перехватываются ими раньше, чем /{code}
var reservedCodes = map[Code]struct{}{
	"ping": {},
	"api":  {},
}

// IsReservedCode сообщает, занят ли код фиксированным маршрутом
func IsReservedCode(code Code) bool {
	_, ok := reservedCodes[code]
	return ok
}

// ValidCode проверяет что код состоит из 1-16 букв латиницы и цифр
// и не совпадает с зарезервированным путём
func ValidCode(code Code) bool {
	if len(code) == 0 || len(code) > MaxCodeLength || IsReservedCode(code) {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// Link сохранённое сопоставление короткого кода и целевого URL
type Link struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Destination string    `json:"destination"`
	Code        Code      `json:"code"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewLink данные для создания ссылки
type NewLink struct {
	OwnerID     string
	Destination string
	Code        Code
}

// Target минимальный набор данных для редиректа
type Target struct {
	LinkID      int64  `json:"link_id"`
	Destination string `json:"destination"`
}

// LinkSummary агрегированная статистика по ссылке владельца
type LinkSummary struct {
	Link         Link    `json:"link"`
	ClickCount   int64   `json:"click_count"`
	RecentClicks []Click `json:"recent_clicks"`
}

// ShortLink ссылка вместе с полным коротким URL
type ShortLink struct {
	Link
	ShortURL string `json:"short_url"`
}
