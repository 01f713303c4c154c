package repository

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/avc-dev/snipit/internal/mocks"
	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingTx запоминает вызовы внутри транзакции
type recordingTx struct {
	calls        []string
	incrementErr error
	insertedMeta model.ClickMeta
}

func (tx *recordingTx) IncrementClickCount(_ context.Context, _ int64) error {
	tx.calls = append(tx.calls, "increment")
	return tx.incrementErr
}

func (tx *recordingTx) InsertClick(_ context.Context, linkID int64, meta model.ClickMeta) (model.Click, error) {
	tx.calls = append(tx.calls, "insert")
	tx.insertedMeta = meta
	return model.Click{ID: 1, LinkID: linkID, RemoteAddress: meta.RemoteAddress}, nil
}

func runWith(tx store.Tx) func(context.Context, store.TxFunc) error {
	return func(ctx context.Context, fn store.TxFunc) error {
		return fn(ctx, tx)
	}
}

func TestRecordClick_IncrementsThenInserts(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	tx := &recordingTx{}
	mockStore.EXPECT().WithinTx(mock.Anything, mock.Anything).RunAndReturn(runWith(tx)).Once()

	repo := New(mockStore)
	longAgent := make([]rune, model.MaxUserAgentLength+10)
	for i := range longAgent {
		longAgent[i] = 'x'
	}

	// Act
	click, err := repo.RecordClick(context.Background(), 7, model.ClickMeta{
		RemoteAddress: "1.2.3.4",
		UserAgent:     string(longAgent),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"increment", "insert"}, tx.calls)
	assert.Equal(t, int64(7), click.LinkID)
	assert.Len(t, tx.insertedMeta.UserAgent, model.MaxUserAgentLength)
}

func TestRecordClick_ReplacesInvalidUTF8(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	tx := &recordingTx{}
	mockStore.EXPECT().WithinTx(mock.Anything, mock.Anything).RunAndReturn(runWith(tx)).Once()

	repo := New(mockStore)

	// Act
	_, err := repo.RecordClick(context.Background(), 7, model.ClickMeta{
		RemoteAddress: "1.2.3.4",
		UserAgent:     "agent\xff",
		Referral:      "https://ref\xc3",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(tx.insertedMeta.UserAgent))
	assert.True(t, utf8.ValidString(tx.insertedMeta.Referral))
}

func TestRecordClick_IncrementFailureSkipsInsert(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	tx := &recordingTx{incrementErr: store.ErrNotFound}
	mockStore.EXPECT().WithinTx(mock.Anything, mock.Anything).RunAndReturn(runWith(tx)).Once()

	// Act
	_, err := New(mockStore).RecordClick(context.Background(), 7, model.ClickMeta{})

	// Assert
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, []string{"increment"}, tx.calls)
}

func TestRepository_WrapsStoreErrors(t *testing.T) {
	storeErr := errors.New("boom")
	ctx := context.Background()

	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().CreateLink(ctx, mock.Anything).Return(model.Link{}, storeErr).Once()
	mockStore.EXPECT().CodeExists(ctx, model.Code("abc")).Return(false, storeErr).Once()
	mockStore.EXPECT().FindLinkByCode(ctx, model.Code("abc")).Return(model.Link{}, storeErr).Once()
	mockStore.EXPECT().ListLinksByOwner(ctx, "owner").Return(nil, storeErr).Once()
	mockStore.EXPECT().CountLinks(ctx).Return(int64(0), storeErr).Once()
	mockStore.EXPECT().ListClicks(ctx, int64(1)).Return(nil, storeErr).Once()
	mockStore.EXPECT().RecentClicks(ctx, int64(1), 5).Return(nil, storeErr).Once()

	repo := New(mockStore)

	_, err := repo.CreateLink(ctx, model.NewLink{Code: "abc"})
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.CodeExists(ctx, "abc")
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.FindByCode(ctx, "abc")
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.ListByOwner(ctx, "owner")
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.CountLinks(ctx)
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.ListClicks(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
	_, err = repo.RecentClicks(ctx, 1, 5)
	assert.ErrorIs(t, err, storeErr)
}

func TestRepository_Ping(t *testing.T) {
	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().Ping(mock.Anything).Return(nil).Once()

	assert.NoError(t, New(mockStore).Ping(context.Background()))
}
