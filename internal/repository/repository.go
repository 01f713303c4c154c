package repository

import (
	"context"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/store"
)

//go:generate mockery --name Store

// Store нижележащее хранилище ссылок и журнала переходов
type Store interface {
	CreateLink(ctx context.Context, link model.NewLink) (model.Link, error)
	CodeExists(ctx context.Context, code model.Code) (bool, error)
	FindLinkByCode(ctx context.Context, code model.Code) (model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	ListClicks(ctx context.Context, linkID int64) ([]model.Click, error)
	RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error)
	WithinTx(ctx context.Context, fn store.TxFunc) error
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
