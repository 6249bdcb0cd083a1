package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cleaning-quote/internal/config"
	"cleaning-quote/internal/storage"
	"cleaning-quote/pkg/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	mode := flag.String("mode", "up", "up, down, status, export or show")
	quoteID := flag.String("quote", "", "quote id for show")
	since := flag.Duration("since", 7*24*time.Hour, "export window")
	out := flag.String("out", "submissions.xlsx", "export file")
	flag.Parse()

	zapLogger, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()
	pg, err := storage.NewPostgresStorage(ctx, *dbCfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
	}
	defer pg.Close()

	switch *mode {
	case "up":
		err = storage.RunMigrations(ctx, pg.DB(), zapLogger)
	case "down":
		err = storage.RollbackMigration(ctx, pg.DB(), zapLogger)
	case "status":
		err = storage.Status(ctx, pg.DB(), zapLogger)
	case "export":
		err = export(ctx, pg, time.Now().Add(-*since), *out, zapLogger)
	case "show":
		err = show(ctx, pg, *quoteID, os.Stdout)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		zapLogger.Fatal("Command failed", zap.String("mode", *mode), zap.Error(err))
	}
}

func export(ctx context.Context, pg *storage.PostgresStorage, since time.Time, path string, log *zap.Logger) error {
	subs, err := pg.ListSubmissions(ctx, since)
	if err != nil {
		return err
	}

	data, err := storage.ExportSubmissionsToExcel(subs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	log.Info("Submissions exported", zap.Int("count", len(subs)), zap.String("file", path))
	return nil
}

type submissionGetter interface {
	GetSubmission(ctx context.Context, quoteID string) (*storage.Submission, error)
}

// show prints the stored snapshot of one submitted quote.
func show(ctx context.Context, pg submissionGetter, quoteID string, w io.Writer) error {
	if quoteID == "" {
		return errors.New("-quote is required for show")
	}

	sub, err := pg.GetSubmission(ctx, quoteID)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		return fmt.Errorf("quote %s was never submitted", quoteID)
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, sub.Snapshot, "", "  "); err != nil {
		return fmt.Errorf("snapshot is not valid JSON: %w", err)
	}
	fmt.Fprintf(w, "submission %d, %s, total %d\n", sub.ID, sub.SubmittedAt.UTC().Format(time.RFC3339), sub.Total)
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
