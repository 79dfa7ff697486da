package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/util"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGPriceRepository reads price histories from the fact_price table.
// It is a read-only alternative to the per-ticker CSV directory.
// fact_price has no adjusted close, so Adj Close mirrors Close.
type PGPriceRepository struct {
	pool *pgxpool.Pool
}

// NewPGPriceRepository creates a new PGPriceRepository
func NewPGPriceRepository(pool *pgxpool.Pool) *PGPriceRepository {
	return &PGPriceRepository{pool: pool}
}

// Tickers lists the tickers that have at least one price row
func (r *PGPriceRepository) Tickers(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT ds.ticker
		FROM dim_security ds
		JOIN fact_price fp ON fp.security_id = ds.id
		ORDER BY ds.ticker
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickers: %w", err)
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}
		tickers = append(tickers, t)
	}
	return tickers, rows.Err()
}

// Identity derives a cache identity from the row count and latest date of a
// ticker, so new price rows invalidate the cached series.
func (r *PGPriceRepository) Identity(ctx context.Context, ticker string) (string, error) {
	query := `
		SELECT count(*), max(fp.date)
		FROM fact_price fp
		JOIN dim_security ds ON ds.id = fp.security_id
		WHERE ds.ticker = $1
	`
	var (
		count  int64
		latest *time.Time
	)
	if err := r.pool.QueryRow(ctx, query, ticker).Scan(&count, &latest); err != nil {
		return "", fmt.Errorf("failed to query price identity: %w", err)
	}
	if count == 0 || latest == nil {
		return "", ErrTickerNotFound
	}
	return fmt.Sprintf("pg:%s|%d|%s", ticker, count, latest.Format(models.DateFormat)), nil
}

// LoadSeries retrieves the full daily history of a ticker
func (r *PGPriceRepository) LoadSeries(ctx context.Context, ticker string) (*models.PriceSeries, error) {
	query := `
		SELECT fp.date, fp.open, fp.high, fp.low, fp.close, fp.volume
		FROM fact_price fp
		JOIN dim_security ds ON ds.id = fp.security_id
		WHERE ds.ticker = $1
		ORDER BY fp.date ASC
	`
	rows, err := r.pool.Query(ctx, query, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	series := &models.PriceSeries{Symbol: ticker}
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Open, &p.High, &p.Low, &p.Close, &p.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan price data: %w", err)
		}
		p.Date = util.TruncateToDay(p.Date)
		p.AdjClose = p.Close
		series.Points = append(series.Points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(series.Points) == 0 {
		return nil, ErrTickerNotFound
	}
	return series, nil
}
