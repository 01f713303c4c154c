package store

import "errors"

var (
	// ErrNotFound запись с таким ключом отсутствует
	ErrNotFound = errors.New("record not found")
	// ErrCodeConflict нарушение уникальности короткого кода
	ErrCodeConflict = errors.New("short code already exists")
)
