package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/snipit/internal/config"
	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/store"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkRepository

// LinkRepository определяет интерфейс для работы с хранилищем ссылок и переходов
type LinkRepository interface {
	FindByCode(ctx context.Context, code model.Code) (model.Link, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	RecordClick(ctx context.Context, linkID int64, meta model.ClickMeta) (model.Click, error)
	ListClicks(ctx context.Context, linkID int64) ([]model.Click, error)
	RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error)
}

//go:generate mockery --name LinkService

// LinkService определяет интерфейс сервиса выдачи коротких кодов
type LinkService interface {
	Create(ctx context.Context, ownerID, destination string, requestedCode model.Code) (model.Link, error)
}

//go:generate mockery --name TargetCache

// TargetCache кэш сопоставления кода и цели редиректа.
// Промах возвращает false без ошибки.
type TargetCache interface {
	Get(ctx context.Context, code model.Code) (model.Target, bool, error)
	Set(ctx context.Context, code model.Code, target model.Target) error
}

// LinkUsecase содержит бизнес-логику сокращения, редиректа и аналитики
type LinkUsecase struct {
	repo    LinkRepository
	service LinkService
	cache   TargetCache
	cfg     *config.Config
	logger  *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase.
// cache может быть nil, тогда поиск всегда идёт в хранилище.
func NewLinkUsecase(repo LinkRepository, service LinkService, cache TargetCache, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:    repo,
		service: service,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
	}
}

// withStoreTimeout ограничивает обращение к хранилищу cfg.Store.Timeout
func (u *LinkUsecase) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, u.cfg.Store.Timeout)
}

// storeError переводит ошибки хранилища в ошибки usecase
func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrLinkNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
