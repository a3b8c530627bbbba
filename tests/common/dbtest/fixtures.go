//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestSubject(t *testing.T, db DBLike, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		"INSERT INTO subjects (id, display_name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func RestrictTestSubject(t *testing.T, db DBLike, id string, until time.Time, reason string, services ...string) {
	t.Helper()

	if services == nil {
		services = []string{}
	}
	_, err := db.Exec(context.Background(), `
		UPDATE subjects SET restricted_until = $2, restriction_reason = $3, restricted_services = $4
		WHERE id = $1`, id, until, reason, services)
	require.NoError(t, err)
}

// CreateTestBooking writes a slot booking straight into the store, bypassing the API.
func CreateTestBooking(t *testing.T, db DBLike, subjectID, serviceType, date, slotKey, status string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO service_records (subject_id, service_type, slot_key, scheduled_for, status)
		VALUES ($1, $2, $3, $4::date, $5)
		RETURNING id::text`, subjectID, serviceType, slotKey, date, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRecords(t *testing.T, db DBLike, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM service_records WHERE scheduled_for = $1::date", date).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO slot_capacities (service_type, capacity) VALUES
		    ('shower', 2),
		    ('laundry', 2)
		ON CONFLICT (service_type) DO UPDATE SET capacity = EXCLUDED.capacity;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
