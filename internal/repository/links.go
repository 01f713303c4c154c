package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/snipit/internal/model"
)

// CreateLink сохраняет новую ссылку с нулевым счётчиком
func (r *Repository) CreateLink(ctx context.Context, link model.NewLink) (model.Link, error) {
	created, err := r.underlying.CreateLink(ctx, link)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}
	return created, nil
}

// CodeExists проверяет занят ли код.
// Ошибка возвращается только при проблемах с хранилищем.
func (r *Repository) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.CodeExists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return exists, nil
}

func (r *Repository) FindByCode(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := r.underlying.FindLinkByCode(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to find link by code: %w", err)
	}
	return link, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	links, err := r.underlying.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links by owner: %w", err)
	}
	return links, nil
}

func (r *Repository) CountLinks(ctx context.Context) (int64, error) {
	count, err := r.underlying.CountLinks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}
