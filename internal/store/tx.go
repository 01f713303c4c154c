package store

import (
	"context"

	"github.com/avc-dev/snipit/internal/model"
)

// Tx операции, доступные только внутри транзакции хранилища.
// Изменения фиксируются вместе при успешном завершении функции WithinTx
// и отбрасываются целиком при ошибке.
type Tx interface {
	IncrementClickCount(ctx context.Context, linkID int64) error
	InsertClick(ctx context.Context, linkID int64, meta model.ClickMeta) (model.Click, error)
}

// TxFunc единица работы внутри транзакции
type TxFunc func(ctx context.Context, tx Tx) error
