package usecase

import (
	"context"

	"github.com/avc-dev/snipit/internal/model"
	"go.uber.org/zap"
)

// Resolve находит цель по коду и фиксирует переход.
// Неизвестный код ничего не пишет; повторов нет.
func (u *LinkUsecase) Resolve(ctx context.Context, code string, meta model.ClickMeta) (string, error) {
	linkCode := model.Code(code)
	if !model.ValidCode(linkCode) {
		return "", ErrLinkNotFound
	}

	target, err := u.lookupTarget(ctx, linkCode)
	if err != nil {
		return "", err
	}

	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	if _, err := u.repo.RecordClick(ctx, target.LinkID, meta); err != nil {
		u.logger.Error("failed to record click",
			zap.String("code", code),
			zap.Int64("link_id", target.LinkID),
			zap.Error(err),
		)
		return "", storeError(err)
	}

	return target.Destination, nil
}

// lookupTarget сначала смотрит в кэш, затем в хранилище.
// Ошибки кэша не мешают редиректу.
func (u *LinkUsecase) lookupTarget(ctx context.Context, code model.Code) (model.Target, error) {
	if u.cache != nil {
		target, ok, err := u.cache.Get(ctx, code)
		switch {
		case err != nil:
			u.logger.Warn("target cache read failed", zap.String("code", code.String()), zap.Error(err))
		case ok:
			return target, nil
		}
	}

	storeCtx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	link, err := u.repo.FindByCode(storeCtx, code)
	if err != nil {
		return model.Target{}, storeError(err)
	}

	target := model.Target{LinkID: link.ID, Destination: link.Destination}
	if u.cache != nil {
		if err := u.cache.Set(ctx, code, target); err != nil {
			u.logger.Warn("target cache write failed", zap.String("code", code.String()), zap.Error(err))
		}
	}

	return target, nil
}
