package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать свободный код
	// за отведённое число попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrCodeTaken запрошенный пользователем код уже занят
	ErrCodeTaken = errors.New("requested code is already taken")
)
