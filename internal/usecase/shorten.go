package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/service"
	"go.uber.org/zap"
)

// ShortenLink проверяет destination и requestedCode, сохраняет ссылку
// и возвращает её вместе с полным коротким URL
func (u *LinkUsecase) ShortenLink(ctx context.Context, ownerID, destination, requestedCode string) (model.ShortLink, error) {
	destination, err := normalizeDestination(destination)
	if err != nil {
		return model.ShortLink{}, err
	}

	code := model.Code(strings.TrimSpace(requestedCode))
	if model.IsReservedCode(code) {
		return model.ShortLink{}, newValidationError("code", "is reserved")
	}
	if code != "" && !model.ValidCode(code) {
		return model.ShortLink{}, newValidationError("code",
			fmt.Sprintf("must be 1-%d latin letters or digits", model.MaxCodeLength))
	}

	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	link, err := u.service.Create(ctx, ownerID, destination, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCodeTaken):
			return model.ShortLink{}, fmt.Errorf("%w: %w", ErrDuplicateCode, err)
		case errors.Is(err, service.ErrMaxRetriesExceeded):
			return model.ShortLink{}, fmt.Errorf("%w: %w", ErrAliasSpaceExhausted, err)
		}

		u.logger.Error("failed to create link",
			zap.String("destination", destination),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return model.ShortLink{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return u.toShortLink(link)
}

// ShortURLFor возвращает полный короткий URL существующей ссылки
func (u *LinkUsecase) ShortURLFor(ctx context.Context, code string) (string, error) {
	if !model.ValidCode(model.Code(code)) {
		return "", ErrLinkNotFound
	}

	ctx, cancel := u.withStoreTimeout(ctx)
	defer cancel()

	link, err := u.repo.FindByCode(ctx, model.Code(code))
	if err != nil {
		return "", storeError(err)
	}

	return u.shortURL(link.Code)
}

func (u *LinkUsecase) toShortLink(link model.Link) (model.ShortLink, error) {
	shortURL, err := u.shortURL(link.Code)
	if err != nil {
		return model.ShortLink{}, err
	}
	return model.ShortLink{Link: link, ShortURL: shortURL}, nil
}

func (u *LinkUsecase) shortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), code.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to build short URL: %w", err)
	}
	return shortURL, nil
}

// normalizeDestination очищает URL от пробелов и кавычек и проверяет его
func normalizeDestination(raw string) (string, error) {
	destination := strings.TrimSpace(raw)
	destination = strings.Trim(destination, `"'`)

	if destination == "" {
		return "", newValidationError("url", "must not be empty")
	}
	if !utf8.ValidString(destination) {
		return "", newValidationError("url", "must be valid UTF-8")
	}
	if utf8.RuneCountInString(destination) > model.MaxDestinationLength {
		return "", newValidationError("url",
			fmt.Sprintf("must be at most %d characters", model.MaxDestinationLength))
	}

	parsed, err := url.Parse(destination)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", newValidationError("url", "must be an absolute URL with scheme and host")
	}

	return destination, nil
}
