package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/snipit/internal/model"
)

// Store хранилище ссылок и переходов в памяти процесса.
// Один мьютекс сериализует транзакции, поэтому счётчик и журнал переходов
// всегда согласованы.
type Store struct {
	mutex sync.Mutex

	links  []model.Link
	byCode map[model.Code]int
	clicks map[int64][]model.Click

	nextClickID int64
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		byCode: make(map[model.Code]int),
		clicks: make(map[int64][]model.Click),
		now:    time.Now,
	}
}

func (s *Store) CreateLink(ctx context.Context, link model.NewLink) (model.Link, error) {
	if err := ctx.Err(); err != nil {
		return model.Link{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byCode[link.Code]; exists {
		return model.Link{}, fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
	}

	created := model.Link{
		ID:          int64(len(s.links) + 1),
		OwnerID:     link.OwnerID,
		Destination: link.Destination,
		Code:        link.Code,
		CreatedAt:   s.now().UTC(),
	}
	s.links = append(s.links, created)
	s.byCode[link.Code] = len(s.links) - 1

	return created, nil
}

func (s *Store) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.byCode[code]
	return exists, nil
}

func (s *Store) FindLinkByCode(ctx context.Context, code model.Code) (model.Link, error) {
	if err := ctx.Err(); err != nil {
		return model.Link{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx, ok := s.byCode[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return s.links[idx], nil
}

func (s *Store) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var result []model.Link
	for _, link := range s.links {
		if link.OwnerID == ownerID {
			result = append(result, link)
		}
	}
	return result, nil
}

func (s *Store) CountLinks(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return int64(len(s.links)), nil
}

// ListClicks возвращает переходы от старых к новым
func (s *Store) ListClicks(ctx context.Context, linkID int64) ([]model.Click, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return slices.Clone(s.clicks[linkID]), nil
}

// RecentClicks возвращает не более limit последних переходов, новые первыми
func (s *Store) RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	log := s.clicks[linkID]
	n := max(0, min(limit, len(log)))
	result := make([]model.Click, 0, n)
	for i := len(log) - 1; i >= len(log)-n; i-- {
		result = append(result, log[i])
	}
	return result, nil
}

// WithinTx выполняет fn под мьютексом хранилища. Изменения копятся в memoryTx
// и применяются только если fn вернула nil.
func (s *Store) WithinTx(ctx context.Context, fn TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &memoryTx{store: s, increments: make(map[int64]int64)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	// контекст мог истечь внутри fn
	if err := ctx.Err(); err != nil {
		return err
	}

	tx.commit()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) linkIndex(linkID int64) (int, bool) {
	idx := int(linkID - 1)
	if linkID < 1 || idx >= len(s.links) {
		return 0, false
	}
	return idx, true
}

// memoryTx откладывает запись до commit. Вызывается только под s.mutex.
type memoryTx struct {
	store      *Store
	increments map[int64]int64
	clicks     []model.Click
	nextID     int64
}

func (tx *memoryTx) IncrementClickCount(ctx context.Context, linkID int64) error {
	if _, ok := tx.store.linkIndex(linkID); !ok {
		return fmt.Errorf("link %d: %w", linkID, ErrNotFound)
	}
	tx.increments[linkID]++
	return nil
}

func (tx *memoryTx) InsertClick(ctx context.Context, linkID int64, meta model.ClickMeta) (model.Click, error) {
	if _, ok := tx.store.linkIndex(linkID); !ok {
		return model.Click{}, fmt.Errorf("link %d: %w", linkID, ErrNotFound)
	}

	tx.nextID++
	click := model.Click{
		ID:            tx.store.nextClickID + tx.nextID,
		LinkID:        linkID,
		RemoteAddress: meta.RemoteAddress,
		UserAgent:     meta.UserAgent,
		Referral:      meta.Referral,
		CreatedAt:     tx.store.now().UTC(),
	}
	tx.clicks = append(tx.clicks, click)
	return click, nil
}

func (tx *memoryTx) commit() {
	s := tx.store
	for linkID, delta := range tx.increments {
		idx, _ := s.linkIndex(linkID)
		s.links[idx].ClickCount += delta
	}
	for _, click := range tx.clicks {
		s.clicks[click.LinkID] = append(s.clicks[click.LinkID], click)
	}
	s.nextClickID += tx.nextID
}
