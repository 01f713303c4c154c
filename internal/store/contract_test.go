package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkStore общий контракт Store и DatabaseStore
type linkStore interface {
	CreateLink(ctx context.Context, link model.NewLink) (model.Link, error)
	CodeExists(ctx context.Context, code model.Code) (bool, error)
	FindLinkByCode(ctx context.Context, code model.Code) (model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	ListClicks(ctx context.Context, linkID int64) ([]model.Click, error)
	RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error)
	WithinTx(ctx context.Context, fn TxFunc) error
	Ping(ctx context.Context) error
}

var (
	_ linkStore = (*Store)(nil)
	_ linkStore = (*DatabaseStore)(nil)
)

func recordClick(ctx context.Context, s linkStore, linkID int64, meta model.ClickMeta) error {
	return s.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.IncrementClickCount(ctx, linkID); err != nil {
			return err
		}
		_, err := tx.InsertClick(ctx, linkID, meta)
		return err
	})
}

// runStoreContract прогоняет одинаковые сценарии на любой реализации.
// newStore должен возвращать пустое хранилище.
func runStoreContract(t *testing.T, newStore func(t *testing.T) linkStore) {
	t.Run("create and find", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.CreateLink(ctx, model.NewLink{OwnerID: "owner-1", Destination: "https://example.com", Code: "abc12345"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, int64(0), created.ClickCount)
		assert.False(t, created.CreatedAt.IsZero())

		found, err := s.FindLinkByCode(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com", found.Destination)
		assert.Equal(t, "owner-1", found.OwnerID)

		again, err := s.FindLinkByCode(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, found, again)

		exists, err := s.CodeExists(ctx, "abc12345")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("find missing code", func(t *testing.T) {
		s := newStore(t)

		_, err := s.FindLinkByCode(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate code leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateLink(ctx, model.NewLink{OwnerID: "1", Destination: "https://a.com", Code: "promo"})
		require.NoError(t, err)

		_, err = s.CreateLink(ctx, model.NewLink{OwnerID: "2", Destination: "https://b.com", Code: "promo"})
		require.ErrorIs(t, err, ErrCodeConflict)

		count, err := s.CountLinks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		link, err := s.FindLinkByCode(ctx, "promo")
		require.NoError(t, err)
		assert.Equal(t, "https://a.com", link.Destination)
		assert.Equal(t, "1", link.OwnerID)
	})

	t.Run("concurrent creates with same code", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const workers = 16

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.CreateLink(ctx, model.NewLink{OwnerID: fmt.Sprint(i), Destination: "https://race.example", Code: "race"})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, ErrCodeConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, workers-1, conflicts)
	})

	t.Run("list by owner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, l := range []model.NewLink{
			{OwnerID: "alice", Destination: "https://a.com/1", Code: "a1"},
			{OwnerID: "bob", Destination: "https://b.com/1", Code: "b1"},
			{OwnerID: "alice", Destination: "https://a.com/2", Code: "a2"},
		} {
			_, err := s.CreateLink(ctx, l)
			require.NoError(t, err)
		}

		links, err := s.ListLinksByOwner(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, model.Code("a1"), links[0].Code)
		assert.Equal(t, model.Code("a2"), links[1].Code)

		none, err := s.ListLinksByOwner(ctx, "carol")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("record click is atomic", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		link, err := s.CreateLink(ctx, model.NewLink{OwnerID: "1", Destination: "https://example.com", Code: "atomic"})
		require.NoError(t, err)

		failure := errors.New("abort")
		err = s.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
			require.NoError(t, tx.IncrementClickCount(ctx, link.ID))
			return failure
		})
		require.ErrorIs(t, err, failure)

		after, err := s.FindLinkByCode(ctx, "atomic")
		require.NoError(t, err)
		assert.Equal(t, int64(0), after.ClickCount)

		clicks, err := s.ListClicks(ctx, link.ID)
		require.NoError(t, err)
		assert.Empty(t, clicks)
	})

	t.Run("click with non UTF-8 headers after normalize", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		link, err := s.CreateLink(ctx, model.NewLink{OwnerID: "owner", Destination: "https://example.com", Code: "utf8case"})
		require.NoError(t, err)

		meta := model.ClickMeta{RemoteAddress: "10.0.0.1", UserAgent: "Mozilla\xff\xfe", Referral: "https://x\xc3"}
		require.NoError(t, recordClick(ctx, s, link.ID, meta.Normalize()))

		clicks, err := s.ListClicks(ctx, link.ID)
		require.NoError(t, err)
		require.Len(t, clicks, 1)
		assert.Equal(t, "Mozilla\uFFFD", clicks[0].UserAgent)
		assert.Equal(t, "https://x\uFFFD", clicks[0].Referral)
	})

	t.Run("increment unknown link", func(t *testing.T) {
		s := newStore(t)

		err := recordClick(context.Background(), s, 424242, model.ClickMeta{RemoteAddress: "1.2.3.4"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("clicks ordered oldest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		link, err := s.CreateLink(ctx, model.NewLink{OwnerID: "1", Destination: "https://example.com", Code: "order"})
		require.NoError(t, err)

		addrs := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
		for _, addr := range addrs {
			require.NoError(t, recordClick(ctx, s, link.ID, model.ClickMeta{RemoteAddress: addr, UserAgent: "ua", Referral: ""}))
		}

		clicks, err := s.ListClicks(ctx, link.ID)
		require.NoError(t, err)
		require.Len(t, clicks, len(addrs))
		for i, click := range clicks {
			assert.Equal(t, addrs[i], click.RemoteAddress)
			assert.Equal(t, link.ID, click.LinkID)
			assert.Equal(t, "ua", click.UserAgent)
			assert.Empty(t, click.Referral)
		}

		recent, err := s.RecentClicks(ctx, link.ID, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "10.0.0.4", recent[0].RemoteAddress)
		assert.Equal(t, "10.0.0.3", recent[1].RemoteAddress)

		none, err := s.RecentClicks(ctx, link.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, none)

		stored, err := s.FindLinkByCode(ctx, "order")
		require.NoError(t, err)
		assert.Equal(t, int64(len(addrs)), stored.ClickCount)
	})

	t.Run("concurrent clicks are all counted", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const n = 50

		link, err := s.CreateLink(ctx, model.NewLink{OwnerID: "1", Destination: "https://example.com", Code: "hot"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, recordClick(ctx, s, link.ID, model.ClickMeta{RemoteAddress: fmt.Sprintf("10.0.0.%d", i)}))
			}(i)
		}
		wg.Wait()

		stored, err := s.FindLinkByCode(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, int64(n), stored.ClickCount)

		clicks, err := s.ListClicks(ctx, link.ID)
		require.NoError(t, err)
		assert.Len(t, clicks, n)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newStore(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.CreateLink(ctx, model.NewLink{OwnerID: "1", Destination: "https://example.com", Code: "late"})
		assert.Error(t, err)

		count, err := s.CountLinks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
