// Package qr рисует QR-коды коротких ссылок.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// moduleSize размер одного модуля QR-кода в пикселях.
// Отрицательный размер в go-qrcode задаёт пиксели на модуль, а не ширину картинки.
const moduleSize = -5

// Encoder кодирует строку в PNG с низким уровнем коррекции ошибок
type Encoder struct {
	level qrcode.RecoveryLevel
}

func NewEncoder() *Encoder {
	return &Encoder{level: qrcode.Low}
}

// Encode возвращает PNG с QR-кодом для content
func (e *Encoder) Encode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, e.level, moduleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
