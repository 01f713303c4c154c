package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/store"
)

// RecordClick увеличивает счётчик ссылки и дописывает событие перехода
// в одной транзакции: либо фиксируются оба изменения, либо ни одного.
func (r *Repository) RecordClick(ctx context.Context, linkID int64, meta model.ClickMeta) (model.Click, error) {
	var click model.Click

	err := r.underlying.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		if err := tx.IncrementClickCount(ctx, linkID); err != nil {
			return err
		}

		var err error
		click, err = tx.InsertClick(ctx, linkID, meta.Normalize())
		return err
	})
	if err != nil {
		return model.Click{}, fmt.Errorf("failed to record click: %w", err)
	}

	return click, nil
}

// ListClicks журнал переходов по ссылке, от старых к новым
func (r *Repository) ListClicks(ctx context.Context, linkID int64) ([]model.Click, error) {
	clicks, err := r.underlying.ListClicks(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	return clicks, nil
}

func (r *Repository) RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error) {
	clicks, err := r.underlying.RecentClicks(ctx, linkID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent clicks: %w", err)
	}
	return clicks, nil
}
