package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/procat-variants/internal/models/m_outbox"
	"github.com/light-bringer/procat-variants/internal/pkg/config"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

// Options for the outbox cleanup job.
type Options struct {
	SpannerDB     string
	RetentionDays int
	DryRun        bool
}

func main() {
	log := logger.New(logger.Options{ServiceName: "cleanup-outbox"})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	log = logger.New(logger.Options{
		ServiceName: "cleanup-outbox",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	opts := Options{}
	flag.StringVar(&opts.SpannerDB, "database", cfg.SpannerDB, "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&opts.RetentionDays, "retention", 30, "Retention days for published events")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	ctx := context.Background()
	if err := opts.validate(); err != nil {
		log.Error(ctx, "invalid options", err)
		os.Exit(2)
	}

	if err := cleanupOutbox(ctx, log, opts, time.Now().UTC()); err != nil {
		log.Error(ctx, "cleanup failed", err)
		os.Exit(1)
	}
}

func (o Options) validate() error {
	if o.SpannerDB == "" {
		return errors.New("-database is required")
	}
	if o.RetentionDays < 1 {
		return fmt.Errorf("-retention must be at least 1, got %d", o.RetentionDays)
	}
	return nil
}

// cutoff is the instant before which published events are removed.
func (o Options) cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -o.RetentionDays)
}

// publishedBefore selects published events processed before @cutoff.
func publishedBefore() string {
	return fmt.Sprintf("%s = @status AND %s < @cutoff", m_outbox.Status, m_outbox.ProcessedAt)
}

func cleanupOutbox(ctx context.Context, log *logger.Logger, opts Options, now time.Time) error {
	client, err := spanner.NewClient(ctx, opts.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	cutoff := opts.cutoff(now)
	ctx = log.WithFields(ctx, map[string]any{
		"cutoff":  cutoff.Format(time.RFC3339),
		"dry_run": opts.DryRun,
	})
	log.Info(ctx, "starting outbox cleanup")

	params := map[string]interface{}{
		"status": m_outbox.StatusPublished,
		"cutoff": cutoff,
	}

	if opts.DryRun {
		count, err := countExpired(ctx, client.Single(), params)
		if err != nil {
			return err
		}
		log.Info(log.WithField(ctx, "events", count), "dry run: events would be deleted")
		return nil
	}

	var deleted int64
	_, err = client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		count, err := txn.Update(ctx, spanner.Statement{
			SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, publishedBefore()),
			Params: params,
		})
		deleted = count
		return err
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}

	log.Info(log.WithField(ctx, "events", deleted), "outbox cleanup completed")
	return nil
}

type querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

func countExpired(ctx context.Context, q querier, params map[string]interface{}) (int64, error) {
	iter := q.Query(ctx, spanner.Statement{
		SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", m_outbox.TableName, publishedBefore()),
		Params: params,
	})
	defer iter.Stop()

	row, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}
