package usecase

import (
	"context"

	"github.com/avc-dev/snipit/internal/model"
	"go.uber.org/zap"
)

// TotalLinks количество ссылок в хранилище
func (u *LinkUsecase) TotalLinks(ctx context.Context) (int64, error) {
	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	count, err := u.repo.CountLinks(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	return count, nil
}

// OwnerLinks возвращает ссылки владельца в порядке создания
func (u *LinkUsecase) OwnerLinks(ctx context.Context, ownerID string) ([]model.ShortLink, error) {
	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	links, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		u.logger.Error("failed to list owner links", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, storeError(err)
	}

	result := make([]model.ShortLink, 0, len(links))
	for _, link := range links {
		short, err := u.toShortLink(link)
		if err != nil {
			return nil, err
		}
		result = append(result, short)
	}

	return result, nil
}

// ClicksForLink журнал переходов по ссылке. Доступен только владельцу.
func (u *LinkUsecase) ClicksForLink(ctx context.Context, ownerID, code string) ([]model.Click, error) {
	if !model.ValidCode(model.Code(code)) {
		return nil, ErrLinkNotFound
	}

	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	link, err := u.repo.FindByCode(ctx, model.Code(code))
	if err != nil {
		return nil, storeError(err)
	}
	if link.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	clicks, err := u.repo.ListClicks(ctx, link.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return clicks, nil
}

// Summary сводка по ссылкам владельца: счётчик и несколько последних переходов
func (u *LinkUsecase) Summary(ctx context.Context, ownerID string) ([]model.LinkSummary, error) {
	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	links, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(err)
	}

	summaries := make([]model.LinkSummary, 0, len(links))
	for _, link := range links {
		recent, err := u.repo.RecentClicks(ctx, link.ID, u.cfg.Analytics.SampleSize)
		if err != nil {
			return nil, storeError(err)
		}
		summaries = append(summaries, model.LinkSummary{
			Link:         link,
			ClickCount:   link.ClickCount,
			RecentClicks: recent,
		})
	}

	return summaries, nil
}
