package service

import (
	"math/rand/v2"

	"github.com/avc-dev/snipit/internal/model"
)

// AllowedChars алфавит коротких кодов: 62 символа
const AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

//go:generate mockery --name Generator

// Generator выдаёт случайный код заданной длины. Уникальность не гарантируется.
type Generator interface {
	Generate(length int) model.Code
}

// CodeGenerator равномерно выбирает символы из AllowedChars.
// Глобальный генератор math/rand/v2 безопасен для конкурентного использования.
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// Generate возвращает код из length символов
func (g *CodeGenerator) Generate(length int) model.Code {
	if length <= 0 {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = AllowedChars[rand.IntN(len(AllowedChars))]
	}

	return model.Code(result)
}
