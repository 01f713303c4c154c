package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxRemoteAddressLength = 45
	MaxUserAgentLength     = 255
	MaxReferralLength      = 2048
)

// Click одно событие перехода по короткой ссылке. Не изменяется после записи.
type Click struct {
	ID            int64     `json:"id"`
	LinkID        int64     `json:"link_id"`
	RemoteAddress string    `json:"remote_address"`
	UserAgent     string    `json:"user_agent,omitempty"`
	Referral      string    `json:"referral,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ClickMeta метаданные запроса, которые попадают в журнал переходов
type ClickMeta struct {
	RemoteAddress string
	UserAgent     string
	Referral      string
}

// Normalize заменяет некорректные UTF-8 последовательности на U+FFFD
// и обрезает поля до размеров колонок хранилища
func (m ClickMeta) Normalize() ClickMeta {
	return ClickMeta{
		RemoteAddress: truncate(m.RemoteAddress, MaxRemoteAddressLength),
		UserAgent:     truncate(m.UserAgent, MaxUserAgentLength),
		Referral:      truncate(m.Referral, MaxReferralLength),
	}
}

func truncate(s string, limit int) string {
	// PostgreSQL не примет невалидные байты в VARCHAR
	s = strings.ToValidUTF8(s, "\uFFFD")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
