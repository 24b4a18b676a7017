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
	"github.com/light-bringer/procat-variants/internal/pkg/query"
)

func main() {
	log := logger.New(logger.Options{ServiceName: "check-events", Format: "console"})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	limit := flag.Int64("limit", 10, "Number of most recent events to show")
	aggregate := flag.String("aggregate", "", "Only show events of this aggregate ID")
	status := flag.String("status", "", "Only show events with this status")
	flag.Parse()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		log.Error(ctx, "failed to create client", err)
		os.Exit(1)
	}
	defer client.Close()

	stmt := recentEvents(*aggregate, *status, *limit)
	events, err := readEvents(ctx, client.Single(), stmt)
	if err != nil {
		log.Error(ctx, "failed to read events", err)
		os.Exit(1)
	}

	if len(events) == 0 {
		fmt.Println("No events found")
		return
	}
	for i, e := range events {
		fmt.Printf("%d. %s - %s (aggregate: %s, status: %s, created: %s)\n",
			i+1, e.EventType, e.EventID, e.AggregateID, e.Status, e.CreatedAt.Format(time.RFC3339))
	}
}

// recentEvents builds the newest-first outbox listing with optional filters.
func recentEvents(aggregateID, status string, limit int64) spanner.Statement {
	q := query.From(m_outbox.TableName).
		Select(m_outbox.EventID, m_outbox.EventType, m_outbox.AggregateID, m_outbox.Status, m_outbox.CreatedAt)
	if aggregateID != "" {
		q = q.Where(query.Eq(m_outbox.AggregateID, aggregateID))
	}
	if status != "" {
		q = q.Where(query.Eq(m_outbox.Status, status))
	}
	return q.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(limit).Build()
}

type querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

func readEvents(ctx context.Context, q querier, stmt spanner.Statement) ([]m_outbox.Data, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	var events []m_outbox.Data
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return events, nil
		}
		if err != nil {
			return nil, err
		}

		var e m_outbox.Data
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
}
