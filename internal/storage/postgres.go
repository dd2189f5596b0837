package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrQuoteNotFound = errors.New("quote not found")

type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, cfg Config, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = cfg.ConnectTimeout
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err := backoff.RetryNotify(
		func() error {
			conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			db = conn
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{db: db, logger: logger}, nil
}

// DB exposes the underlying handle for migrations.
func (s *PostgresStorage) DB() *sql.DB {
	return s.db.DB
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStorage) SaveQuote(ctx context.Context, q QuoteRecord) error {
	const query = `
        INSERT INTO quotes (
            id, chat_id, service, customer_type, params,
            material_cost, labor_cost, total_cost, retail_price, dealer_price,
            final_price, labor_hours, stages, contact, status, created_at
        ) VALUES (
            :id, :chat_id, :service, :customer_type, :params,
            :material_cost, :labor_cost, :total_cost, :retail_price, :dealer_price,
            :final_price, :labor_hours, :stages, :contact, :status, :created_at
        )
    `

	if _, err := s.db.NamedExecContext(ctx, query, q); err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetQuote(ctx context.Context, id uuid.UUID) (*QuoteRecord, error) {
	const query = `SELECT * FROM quotes WHERE id = $1`

	var q QuoteRecord
	if err := s.db.GetContext(ctx, &q, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &q, nil
}

func (s *PostgresStorage) ListQuotesByChat(ctx context.Context, chatID int64, limit int) ([]QuoteRecord, error) {
	const query = `
        SELECT * FROM quotes
        WHERE chat_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	var quotes []QuoteRecord
	if err := s.db.SelectContext(ctx, &quotes, query, chatID, limit); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *PostgresStorage) ListQuotes(ctx context.Context, since time.Time) ([]QuoteRecord, error) {
	const query = `SELECT * FROM quotes WHERE created_at >= $1 ORDER BY created_at DESC`

	var quotes []QuoteRecord
	if err := s.db.SelectContext(ctx, &quotes, query, since); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// MarkContacted attaches the customer's contact to a quote after the lead
// was handed to the CRM.
func (s *PostgresStorage) MarkContacted(ctx context.Context, id uuid.UUID, contact string) error {
	const query = `UPDATE quotes SET contact = $1, status = $2 WHERE id = $3`

	res, err := s.db.ExecContext(ctx, query, contact, StatusContacted, id)
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}
	if n == 0 {
		return ErrQuoteNotFound
	}
	return nil
}
