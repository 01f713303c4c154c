package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/snipit/internal/config"
	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/store"
	"go.uber.org/zap"
)

//go:generate mockery --name CodeRepository

// CodeRepository операции хранилища, нужные для выдачи кода
type CodeRepository interface {
	CreateLink(ctx context.Context, link model.NewLink) (model.Link, error)
	CodeExists(ctx context.Context, code model.Code) (bool, error)
}

// LinkService создаёт ссылки, подбирая свободный короткий код
type LinkService struct {
	repo          CodeRepository
	codeGenerator Generator
	cfg           *config.Config
	logger        *zap.Logger
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo CodeRepository, cfg *config.Config, logger *zap.Logger) *LinkService {
	return &LinkService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
		logger:        logger,
	}
}

// Create сохраняет ссылку. Если requestedCode задан, делается одна попытка вставки
// и занятый код даёт ErrCodeTaken. Иначе код генерируется в цикле
// generate -> exists -> insert, ограниченном cfg.Alias.MaxAttempts.
func (s *LinkService) Create(ctx context.Context, ownerID, destination string, requestedCode model.Code) (model.Link, error) {
	if requestedCode != "" {
		link, err := s.repo.CreateLink(ctx, model.NewLink{OwnerID: ownerID, Destination: destination, Code: requestedCode})
		if err != nil {
			if errors.Is(err, store.ErrCodeConflict) {
				return model.Link{}, fmt.Errorf("code %s: %w", requestedCode, ErrCodeTaken)
			}
			return model.Link{}, fmt.Errorf("failed to create link: %w", err)
		}
		return link, nil
	}

	return s.createWithGeneratedCode(ctx, ownerID, destination)
}

func (s *LinkService) createWithGeneratedCode(ctx context.Context, ownerID, destination string) (model.Link, error) {
	for attempt := 0; attempt < s.cfg.Alias.MaxAttempts; attempt++ {
		code := s.codeGenerator.Generate(s.cfg.Alias.Length)
		if model.IsReservedCode(code) {
			continue
		}

		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return model.Link{}, fmt.Errorf("failed to check generated code: %w", err)
		}
		if exists {
			continue
		}

		link, err := s.repo.CreateLink(ctx, model.NewLink{OwnerID: ownerID, Destination: destination, Code: code})
		if errors.Is(err, store.ErrCodeConflict) {
			// код заняли между проверкой и вставкой
			s.logger.Debug("generated code lost insert race", zap.String("code", code.String()))
			continue
		}
		if err != nil {
			return model.Link{}, fmt.Errorf("failed to create link: %w", err)
		}

		return link, nil
	}

	s.logger.Error("alias space exhausted",
		zap.Int("attempts", s.cfg.Alias.MaxAttempts),
		zap.Int("length", s.cfg.Alias.Length),
	)
	return model.Link{}, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Alias.MaxAttempts, ErrMaxRetriesExceeded)
}
