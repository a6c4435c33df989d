package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/internal/history"
	"github.com/strategic-council/screener/models"
)

func TestPostgresStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		tcPostgres.WithDatabase("screener"),
		tcPostgres.WithUsername("screener"),
		tcPostgres.WithPassword("screener"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		t.Fatalf("postgres container: %v", err)
	}
	defer func() { _ = pgC.Terminate(ctx) }()

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	store, err := history.NewPostgresStore(config.PostgresConfig{URL: dsn})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	snap := history.NewSnapshot()
	snap.Append(models.Daily, models.HistoryEntry{Date: "2025-03-12 07:00 UTC", Summary: "calm day"})
	snap.Append(models.Daily, models.HistoryEntry{Date: "2025-03-13 07:00 UTC", Summary: "vol returned"})
	snap.Append(models.Annual, models.HistoryEntry{Date: "2025-01-01 07:00 UTC", Summary: "year of rates"})

	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	daily := loaded.Entries[models.Daily]
	if len(daily) != 2 || daily[0].Summary != "calm day" || daily[1].Summary != "vol returned" {
		t.Errorf("daily entries = %+v", daily)
	}
	if got := loaded.Entries[models.Annual]; len(got) != 1 || got[0].Date != "2025-01-01 07:00 UTC" {
		t.Errorf("annual entries = %+v", got)
	}

	// Save is a full replace, not an append.
	snap.Entries[models.Annual] = nil
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(loaded.Entries[models.Annual]) != 0 {
		t.Error("replaced save left stale annual entries behind")
	}
}
