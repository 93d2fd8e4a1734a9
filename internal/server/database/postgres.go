// Package database opens the server's PostgreSQL pool and waits for it to
// become reachable.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/mnemos/internal/logging"
)

const (
	waitBaseDelay = 250 * time.Millisecond
	waitMaxDelay  = 5 * time.Second
)

// Open returns a pgx-backed pool. No connection is made until first use.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// Pinger is the part of *sql.DB WaitReady needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitReady pings db with exponential backoff until it answers or wait
// elapses. A non-positive wait tries once.
func WaitReady(ctx context.Context, db Pinger, wait time.Duration, l logging.Logger) error {
	b := retry.NewExponential(waitBaseDelay)
	b = retry.WithCappedDuration(waitMaxDelay, b)
	if wait > 0 {
		b = retry.WithMaxDuration(wait, b)
	} else {
		b = retry.WithMaxRetries(0, b)
	}

	attempt := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			l.Warn(ctx, "database not reachable yet", "attempt", attempt, "error", err.Error())
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}
	return nil
}
