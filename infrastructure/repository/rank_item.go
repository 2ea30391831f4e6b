// Package repository contains the data-access implementations
package repository

import (
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/betpicks/betsites-api/infrastructure/database/postgres"
	"github.com/betpicks/betsites-api/internal/domain"
)

const (
	rankItemsTable = "rank_items"

	// pq error code for unique_violation
	uniqueViolationCode = "23505"
)

var rankItemColumns = []string{
	"id",
	"site_name",
	"logo",
	"advantages",
	"welcome_bonus",
	"payments",
	"promo_code",
	"rank",
	"create_account_url",
	"download_app_url",
	"created_at",
	"updated_at",
}

type RankItemRepository interface {
	ListRankItems() ([]*domain.RankItem, error)
	GetRankItemByID(id string) (*domain.RankItem, error)
	CreateRankItem(item *domain.RankItem) (*domain.RankItem, error)
	UpdateRankItem(id string, req *domain.UpdateRankItemRequest) (*domain.RankItem, error)
	DeleteRankItem(id string) (bool, error)
}

type rankItemRepository struct {
	conn postgres.Conn
}

func NewRankItemRepository(conn postgres.Conn) RankItemRepository {
	return &rankItemRepository{
		conn: conn,
	}
}

// IsUniqueViolation reports whether err was caused by a unique constraint,
// i.e. a duplicate site_name or rank.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// ListRankItems returns every stored item ordered ascending by rank.
func (r *rankItemRepository) ListRankItems() ([]*domain.RankItem, error) {
	query, args, err := squirrel.
		Select(rankItemColumns...).
		From(rankItemsTable).
		OrderBy("rank ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building list query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing rank items")
	}
	defer rows.Close()

	items := make([]*domain.RankItem, 0)
	for rows.Next() {
		item, err := scanRankItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning rank item")
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rank items")
	}

	return items, nil
}

// GetRankItemByID returns (nil, nil) when no item with that id exists.
func (r *rankItemRepository) GetRankItemByID(id string) (*domain.RankItem, error) {
	query, args, err := squirrel.
		Select(rankItemColumns...).
		From(rankItemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building get query")
	}

	item, err := scanRankItemRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching rank item")
	}

	return item, nil
}

func (r *rankItemRepository) CreateRankItem(item *domain.RankItem) (*domain.RankItem, error) {
	query, args, err := squirrel.
		Insert(rankItemsTable).
		Columns(
			"id",
			"site_name",
			"logo",
			"advantages",
			"welcome_bonus",
			"payments",
			"promo_code",
			"rank",
			"create_account_url",
			"download_app_url",
		).
		Values(
			item.ID,
			item.SiteName,
			item.Logo,
			pq.Array(item.Advantages),
			item.WelcomeBonus,
			pq.Array(item.Payments),
			item.PromoCode,
			item.Rank,
			item.CreateAccountURL,
			item.DownloadAppURL,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building insert query")
	}

	err = r.conn.QueryRow(query, args...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateRankItem applies only the fields present in req and refreshes
// updated_at. Returns (nil, nil) when no item with that id exists.
func (r *rankItemRepository) UpdateRankItem(id string, req *domain.UpdateRankItemRequest) (*domain.RankItem, error) {
	queryBuilder := squirrel.
		Update(rankItemsTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})

	if req.SiteName != nil {
		queryBuilder = queryBuilder.Set("site_name", *req.SiteName)
	}
	if req.Logo != nil {
		queryBuilder = queryBuilder.Set("logo", *req.Logo)
	}
	if req.Advantages != nil {
		queryBuilder = queryBuilder.Set("advantages", pq.Array(*req.Advantages))
	}
	if req.WelcomeBonus != nil {
		queryBuilder = queryBuilder.Set("welcome_bonus", *req.WelcomeBonus)
	}
	if req.Payments != nil {
		queryBuilder = queryBuilder.Set("payments", pq.Array(*req.Payments))
	}
	if req.PromoCode != nil {
		queryBuilder = queryBuilder.Set("promo_code", *req.PromoCode)
	}
	if req.Rank != nil {
		queryBuilder = queryBuilder.Set("rank", *req.Rank)
	}
	if req.CreateAccountURL != nil {
		queryBuilder = queryBuilder.Set("create_account_url", *req.CreateAccountURL)
	}
	if req.DownloadAppURL != nil {
		queryBuilder = queryBuilder.Set("download_app_url", *req.DownloadAppURL)
	}

	query, args, err := queryBuilder.
		Suffix("RETURNING " + strings.Join(rankItemColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building update query")
	}

	item, err := scanRankItemRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return item, nil
}

// DeleteRankItem removes the item and reports whether a row was deleted.
func (r *rankItemRepository) DeleteRankItem(id string) (bool, error) {
	query, args, err := squirrel.
		Delete(rankItemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "building delete query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, errors.Wrap(err, "deleting rank item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "reading rows affected")
	}

	return affected > 0, nil
}

func scanRankItem(rows *sql.Rows) (*domain.RankItem, error) {
	item := &domain.RankItem{}

	err := rows.Scan(
		&item.ID,
		&item.SiteName,
		&item.Logo,
		pq.Array(&item.Advantages),
		&item.WelcomeBonus,
		pq.Array(&item.Payments),
		&item.PromoCode,
		&item.Rank,
		&item.CreateAccountURL,
		&item.DownloadAppURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func scanRankItemRow(row *sql.Row) (*domain.RankItem, error) {
	item := &domain.RankItem{}

	err := row.Scan(
		&item.ID,
		&item.SiteName,
		&item.Logo,
		pq.Array(&item.Advantages),
		&item.WelcomeBonus,
		pq.Array(&item.Payments),
		&item.PromoCode,
		&item.Rank,
		&item.CreateAccountURL,
		&item.DownloadAppURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
