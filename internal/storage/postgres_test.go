package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewWithDB(sqlx.NewDb(db, "sqlmock"), zap.NewNop()), mock
}

func sampleOrder() order.Order {
	o := order.New("q-1", catalog.VendorDirect, order.ModeCustomer)
	o.Customer = order.Customer{
		Name:       "山田太郎",
		PostalCode: "1000001",
		Address:    "東京都千代田区千代田",
		Phone:      "09012345678",
		Email:      "taro@example.com",
	}
	o.Categories = []catalog.Category{catalog.CategoryToilet}
	o.Toilet.Count = 1
	o.Price = order.Price{Total: 7700}
	return o
}

var submissionColumns = []string{
	"id", "quote_id", "vendor", "mode", "customer_name", "phone", "email",
	"postal_code", "address", "categories", "total", "discount", "snapshot", "submitted_at",
}

func TestSaveSubmission(t *testing.T) {
	s, mock := newMockStorage(t)
	o := sampleOrder()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO quote_submissions .* ON CONFLICT \\(quote_id\\) DO UPDATE").
			WithArgs(
				"q-1", "direct", "customer", "山田太郎", "09012345678", "taro@example.com",
				"1000001", "東京都千代田区千代田", sqlmock.AnyArg(), 7700, 0, sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := s.SaveSubmission(context.Background(), o, order.ModeCustomer)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO quote_submissions").
			WillReturnError(errors.New("connection reset"))

		err := s.Submit(context.Background(), o, order.ModeCustomer)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubmission(t *testing.T) {
	s, mock := newMockStorage(t)
	at := time.Date(2026, 11, 2, 1, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(submissionColumns).AddRow(
			42, "q-1", "direct", "customer", "山田太郎", "09012345678", "taro@example.com",
			"1000001", "東京都千代田区千代田", []byte("{toilet,kitchen}"), 7700, 0, []byte(`{"id":"q-1"}`), at,
		)
		mock.ExpectQuery("SELECT .* FROM quote_submissions WHERE quote_id = \\$1").
			WithArgs("q-1").
			WillReturnRows(rows)

		sub, err := s.GetSubmission(context.Background(), "q-1")
		require.NoError(t, err)
		assert.Equal(t, int64(42), sub.ID)
		assert.Equal(t, []string{"toilet", "kitchen"}, []string(sub.Categories))
		assert.JSONEq(t, `{"id":"q-1"}`, string(sub.Snapshot))
		assert.True(t, at.Equal(sub.SubmittedAt))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM quote_submissions WHERE quote_id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		sub, err := s.GetSubmission(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
		assert.Nil(t, sub)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSubmissions(t *testing.T) {
	s, mock := newMockStorage(t)
	since := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(submissionColumns).
		AddRow(2, "q-2", "partner", "staff", "佐藤", "0312345678", "", "1500001", "東京都渋谷区",
			[]byte("{aircon}"), 11000, 0, []byte(`{}`), since.Add(2*time.Hour)).
		AddRow(1, "q-1", "direct", "customer", "山田", "09012345678", "a@example.com", "1000001", "東京都千代田区",
			[]byte("{toilet}"), 7700, 0, []byte(`{}`), since.Add(time.Hour))

	mock.ExpectQuery("SELECT .* FROM quote_submissions WHERE submitted_at >= \\$1 ORDER BY submitted_at DESC").
		WithArgs(since).
		WillReturnRows(rows)

	subs, err := s.ListSubmissions(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "q-2", subs[0].QuoteID)
	assert.Equal(t, "partner", subs[0].Vendor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
