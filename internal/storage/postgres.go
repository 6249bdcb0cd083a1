package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cleaning-quote/internal/config"
	"cleaning-quote/internal/order"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Submission is one stored quote snapshot.
type Submission struct {
	ID           int64           `db:"id"`
	QuoteID      string          `db:"quote_id"`
	Vendor       string          `db:"vendor"`
	Mode         string          `db:"mode"`
	CustomerName string          `db:"customer_name"`
	Phone        string          `db:"phone"`
	Email        string          `db:"email"`
	PostalCode   string          `db:"postal_code"`
	Address      string          `db:"address"`
	Categories   pq.StringArray  `db:"categories"`
	Total        int             `db:"total"`
	Discount     int             `db:"discount"`
	Snapshot     json.RawMessage `db:"snapshot"`
	SubmittedAt  time.Time       `db:"submitted_at"`
}

func NewPostgresStorage(ctx context.Context, cfg config.Database, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
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

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return NewWithDB(db, logger), nil
}

// NewWithDB wraps an open connection.
func NewWithDB(db *sqlx.DB, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// DB exposes the underlying handle for migrations.
func (s *PostgresStorage) DB() *sql.DB {
	return s.db.DB
}

// Submit stores the snapshot; it satisfies the quote submission sink.
func (s *PostgresStorage) Submit(ctx context.Context, o order.Order, mode order.Mode) error {
	_, err := s.SaveSubmission(ctx, o, mode)
	return err
}

// SaveSubmission upserts by quote id so a retried submission overwrites
// the earlier attempt.
func (s *PostgresStorage) SaveSubmission(ctx context.Context, o order.Order, mode order.Mode) (int64, error) {
	const operation = "storage.SaveSubmission"

	const query = `
        INSERT INTO quote_submissions (
            quote_id, vendor, mode, customer_name, phone, email,
            postal_code, address, categories, total, discount, snapshot, submitted_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (quote_id) DO UPDATE SET
            vendor = EXCLUDED.vendor,
            mode = EXCLUDED.mode,
            customer_name = EXCLUDED.customer_name,
            phone = EXCLUDED.phone,
            email = EXCLUDED.email,
            postal_code = EXCLUDED.postal_code,
            address = EXCLUDED.address,
            categories = EXCLUDED.categories,
            total = EXCLUDED.total,
            discount = EXCLUDED.discount,
            snapshot = EXCLUDED.snapshot,
            submitted_at = EXCLUDED.submitted_at
        RETURNING id
    `

	snapshot, err := json.Marshal(o)
	if err != nil {
		return 0, fmt.Errorf("%s: marshal snapshot: %w", operation, err)
	}

	categories := make([]string, len(o.Categories))
	for i, c := range o.Categories {
		categories[i] = string(c)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, query,
		o.ID,
		string(o.Vendor),
		string(mode),
		o.Customer.Name,
		o.Customer.Phone,
		o.Customer.Email,
		o.Customer.PostalCode,
		o.Customer.Address,
		pq.Array(categories),
		o.Price.Total,
		o.Price.Discount,
		snapshot,
		time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to save submission: %w", operation, err)
	}

	s.logger.Info("Submission stored",
		zap.String("quote_id", o.ID),
		zap.Int64("id", id))
	return id, nil
}

func (s *PostgresStorage) GetSubmission(ctx context.Context, quoteID string) (*Submission, error) {
	const query = `
        SELECT id, quote_id, vendor, mode, customer_name, phone, email,
               postal_code, address, categories, total, discount, snapshot, submitted_at
        FROM quote_submissions
        WHERE quote_id = $1
    `

	var sub Submission
	err := s.db.GetContext(ctx, &sub, query, quoteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &sub, nil
}

// ListSubmissions returns submissions made at or after since, newest first.
func (s *PostgresStorage) ListSubmissions(ctx context.Context, since time.Time) ([]Submission, error) {
	const query = `
        SELECT id, quote_id, vendor, mode, customer_name, phone, email,
               postal_code, address, categories, total, discount, snapshot, submitted_at
        FROM quote_submissions
        WHERE submitted_at >= $1
        ORDER BY submitted_at DESC
    `

	var subs []Submission
	if err := s.db.SelectContext(ctx, &subs, query, since); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
