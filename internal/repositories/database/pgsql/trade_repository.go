package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	"github.com/khatasync/khata_backend/internal/models"
	"github.com/khatasync/khata_backend/internal/utils/mapping"
)

type PgxTradeRepository struct {
	BaseRepository
}

// newPgxTradeRepository creates a new repository for trade transactions.
func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryFacade {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

const tradeColumns = `trade_id, farm_name, trade_type, item, quantity, rate, buy_rate, total, profit, date, note, created_at, created_by, last_updated_at, last_updated_by`

func scanTrade(row pgx.Row) (*models.TradeTransaction, error) {
	var m models.TradeTransaction
	err := row.Scan(
		&m.TradeID, &m.FarmName, &m.TradeType, &m.Item, &m.Quantity, &m.Rate, &m.BuyRate,
		&m.Total, &m.Profit, &m.Date, &m.Note,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTrade persists a new trade record.
func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.TradeTransaction) error {
	m := mapping.ToModelTrade(trade)
	query := `
		INSERT INTO trade_transactions (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TradeID, m.FarmName, m.TradeType, m.Item, m.Quantity, m.Rate, m.BuyRate,
		m.Total, m.Profit, m.Date, m.Note,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trade", err)
	}
	return nil
}

// FindTradeByID retrieves a trade by its unique identifier.
func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.TradeTransaction, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade_transactions WHERE trade_id = $1;`
	m, err := scanTrade(r.Pool.QueryRow(ctx, query, tradeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query trade "+tradeID, err)
	}
	d := mapping.ToDomainTrade(*m)
	return &d, nil
}

// ListTrades retrieves trade records, optionally filtered by farm name, newest first.
func (r *PgxTradeRepository) ListTrades(ctx context.Context, farmName *string) ([]domain.TradeTransaction, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade_transactions`
	args := []any{}
	if farmName != nil {
		query += ` WHERE LOWER(farm_name) = LOWER($1)`
		args = append(args, *farmName)
	}
	query += ` ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list trades", err)
	}
	defer rows.Close()

	var ms []models.TradeTransaction
	for rows.Next() {
		m, err := scanTrade(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trade row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate trade rows", err)
	}
	return mapping.ToDomainTradeSlice(ms), nil
}

// UpdateTrade updates an existing trade record.
func (r *PgxTradeRepository) UpdateTrade(ctx context.Context, trade domain.TradeTransaction) error {
	m := mapping.ToModelTrade(trade)
	query := `
		UPDATE trade_transactions
		SET farm_name = $2, trade_type = $3, item = $4, quantity = $5, rate = $6, buy_rate = $7,
		    total = $8, profit = $9, date = $10, note = $11, last_updated_at = $12, last_updated_by = $13
		WHERE trade_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TradeID, m.FarmName, m.TradeType, m.Item, m.Quantity, m.Rate, m.BuyRate,
		m.Total, m.Profit, m.Date, m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update trade "+m.TradeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTrade removes a trade record.
func (r *PgxTradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trade_transactions WHERE trade_id = $1;`, tradeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete trade "+tradeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
