package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// schemaStatements are idempotent and applied in order at startup.
// Cascade deletes are done in application-level transactions, not via
// ON DELETE CASCADE, so partial failures stay impossible but explicit.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		user_id INTEGER PRIMARY KEY REFERENCES users(id),
		weight REAL NOT NULL,
		height REAL NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL,
		daily_steps_goal INTEGER NOT NULL DEFAULT 10000,
		preferred_unit TEXT NOT NULL DEFAULT 'kg' CHECK (preferred_unit IN ('kg', 'lb')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS weight_log (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		weight REAL NOT NULL,
		date TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT 'kg',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS routine (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		num_days INTEGER NOT NULL DEFAULT 4,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS week (
		id SERIAL PRIMARY KEY,
		routine_id INTEGER NOT NULL REFERENCES routine(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS day_title (
		week_id INTEGER NOT NULL REFERENCES week(id),
		day_index INTEGER NOT NULL CHECK (day_index BETWEEN 1 AND 7),
		title TEXT NOT NULL,
		day_order INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (week_id, day_index)
	);`,
	`CREATE TABLE IF NOT EXISTS exercise_library (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		target_muscle TEXT NOT NULL,
		equipment TEXT NOT NULL,
		difficulty_level TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS exercise (
		id SERIAL PRIMARY KEY,
		week_id INTEGER NOT NULL REFERENCES week(id),
		day_index INTEGER NOT NULL,
		library_id INTEGER REFERENCES exercise_library(id),
		custom_name TEXT,
		series_target INTEGER NOT NULL DEFAULT 3,
		reps_target TEXT NOT NULL DEFAULT '',
		weight TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT 'kg',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		sensation TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		CHECK (
			(library_id IS NOT NULL AND custom_name IS NULL)
			OR (library_id IS NULL AND custom_name IS NOT NULL)
		)
	);`,
	`CREATE TABLE IF NOT EXISTS exercise_set (
		exercise_id INTEGER NOT NULL REFERENCES exercise(id),
		set_index INTEGER NOT NULL CHECK (set_index >= 1),
		reps_done INTEGER NOT NULL DEFAULT 0,
		weight_done REAL NOT NULL DEFAULT 0,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		sensation TEXT,
		PRIMARY KEY (exercise_id, set_index)
	);`,
	`CREATE TABLE IF NOT EXISTS daily_steps (
		user_id INTEGER NOT NULL REFERENCES users(id),
		date TEXT NOT NULL,
		steps INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, date)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_exercise_week_day ON exercise (week_id, day_index, order_index);`,
	`CREATE INDEX IF NOT EXISTS idx_week_routine ON week (routine_id);`,
	`CREATE INDEX IF NOT EXISTS idx_weight_log_user ON weight_log (user_id, date);`,
	`CREATE INDEX IF NOT EXISTS idx_library_muscle ON exercise_library (target_muscle, difficulty_level);`,
}

// Migrate applies the schema statements. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	log.Debugf("db schema checked, %d statements applied", len(schemaStatements))
	return nil
}
