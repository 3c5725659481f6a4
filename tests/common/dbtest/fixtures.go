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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixture users are never logged in through the API; the hash only has to be
// well-formed bcrypt.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, role)
		VALUES ('Test User', $1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING user_id`,
		email, testPasswordHash, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) int64 {
	t.Helper()

	ctx := context.Background()
	var roomID int64
	err := db.QueryRow(ctx, `
		INSERT INTO rooms (room_name, capacity)
		VALUES ($1, $2)
		RETURNING room_id`,
		name, capacity).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

func CreateTestVehicle(t *testing.T, db DBLike, name, plateNo string, seats int) int64 {
	t.Helper()

	ctx := context.Background()
	var vehicleID int64
	err := db.QueryRow(ctx, `
		INSERT INTO vehicles (vehicle_name, plate_no, seats)
		VALUES ($1, $2, $3)
		RETURNING vehicle_id`,
		name, plateNo, seats).Scan(&vehicleID)
	require.NoError(t, err)

	return vehicleID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (room_name, capacity) VALUES
		    ('Conference Room A', 12),
		    ('Board Room', 8);
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO vehicles (vehicle_name, plate_no, seats) VALUES
		    ('Hiace Van', 'LEA-1234', 12),
		    ('Corolla', 'LEB-5678', 4);
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
