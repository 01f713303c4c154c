package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const linkColumns = `id, owner_id, destination, code, click_count, created_at`

const clickColumns = `id, link_id, remote_address, user_agent, referral, created_at`

// DatabaseStore хранилище ссылок и переходов в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// CreateLink вставляет ссылку одним INSERT. Уникальность кода обеспечивает
// ограничение links_code_key, конфликт возвращается как ErrCodeConflict.
func (ds *DatabaseStore) CreateLink(ctx context.Context, link model.NewLink) (model.Link, error) {
	query := `
		INSERT INTO links (owner_id, destination, code)
		VALUES ($1, $2, $3)
		RETURNING ` + linkColumns

	created, err := scanLink(ds.pool.QueryRow(ctx, query, link.OwnerID, link.Destination, string(link.Code)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Link{}, fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
		}
		return model.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	return created, nil
}

func (ds *DatabaseStore) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM links WHERE code = $1)`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

func (ds *DatabaseStore) FindLinkByCode(ctx context.Context, code model.Code) (model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE owner_id = $1
		ORDER BY created_at, id`

	rows, err := ds.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links by owner: %w", err)
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Link, error) {
		return scanLink(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan links: %w", err)
	}

	return links, nil
}

func (ds *DatabaseStore) CountLinks(ctx context.Context) (int64, error) {
	var count int64
	if err := ds.pool.QueryRow(ctx, `SELECT count(*) FROM links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

// ListClicks возвращает переходы по ссылке от старых к новым
func (ds *DatabaseStore) ListClicks(ctx context.Context, linkID int64) ([]model.Click, error) {
	query := `
		SELECT ` + clickColumns + `
		FROM clicks
		WHERE link_id = $1
		ORDER BY created_at, id`

	return ds.queryClicks(ctx, query, linkID)
}

// RecentClicks возвращает последние limit переходов, новые первыми
func (ds *DatabaseStore) RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error) {
	if limit <= 0 {
		return []model.Click{}, nil
	}

	query := `
		SELECT ` + clickColumns + `
		FROM clicks
		WHERE link_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	return ds.queryClicks(ctx, query, linkID, limit)
}

func (ds *DatabaseStore) queryClicks(ctx context.Context, query string, args ...any) ([]model.Click, error) {
	rows, err := ds.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}

	clicks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Click, error) {
		return scanClick(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clicks: %w", err)
	}

	return clicks, nil
}

// WithinTx выполняет fn в транзакции READ COMMITTED. UPDATE счётчика берёт
// блокировку строки ссылки, поэтому конкурентные переходы сериализуются.
func (ds *DatabaseStore) WithinTx(ctx context.Context, fn TxFunc) error {
	err := pgx.BeginFunc(ctx, ds.pool, func(tx pgx.Tx) error {
		return fn(ctx, &databaseTx{tx: tx})
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

type databaseTx struct {
	tx pgx.Tx
}

func (t *databaseTx) IncrementClickCount(ctx context.Context, linkID int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE links SET click_count = click_count + 1 WHERE id = $1`, linkID)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %d: %w", linkID, ErrNotFound)
	}
	return nil
}

func (t *databaseTx) InsertClick(ctx context.Context, linkID int64, meta model.ClickMeta) (model.Click, error) {
	query := `
		INSERT INTO clicks (link_id, remote_address, user_agent, referral)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + clickColumns

	click, err := scanClick(t.tx.QueryRow(ctx, query,
		linkID, meta.RemoteAddress, nullString(meta.UserAgent), nullString(meta.Referral)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.Click{}, fmt.Errorf("link %d: %w", linkID, ErrNotFound)
		}
		return model.Click{}, fmt.Errorf("failed to insert click: %w", err)
	}

	return click, nil
}

func scanLink(row pgx.Row) (model.Link, error) {
	var (
		link model.Link
		code string
	)
	if err := row.Scan(&link.ID, &link.OwnerID, &link.Destination, &code, &link.ClickCount, &link.CreatedAt); err != nil {
		return model.Link{}, err
	}
	link.Code = model.Code(code)
	return link, nil
}

func scanClick(row pgx.Row) (model.Click, error) {
	var (
		click     model.Click
		userAgent *string
		referral  *string
	)
	if err := row.Scan(&click.ID, &click.LinkID, &click.RemoteAddress, &userAgent, &referral, &click.CreatedAt); err != nil {
		return model.Click{}, err
	}
	if userAgent != nil {
		click.UserAgent = *userAgent
	}
	if referral != nil {
		click.Referral = *referral
	}
	return click, nil
}

// nullString пишет пустую строку как NULL
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
