package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migration is one reversible schema step. Versions are applied in ascending order.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

type MigrationStatus struct {
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

// migrationLockID serializes concurrent migrators through pg_advisory_lock.
const migrationLockID int64 = 7_240_311

type Migrator struct {
	pool       *pgxpool.Pool
	migrations []Migration
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool, migrations: Migrations}
}

// RunMigrations applies every pending migration.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	n, err := NewMigrator(pool).Up(ctx, 0)
	if err != nil {
		return err
	}
	log.Info().Int("applied", n).Msg("migrations completed successfully")
	return nil
}

// Up applies up to steps pending migrations; steps <= 0 applies all of them.
func (m *Migrator) Up(ctx context.Context, steps int) (int, error) {
	applied := 0
	err := m.withLock(ctx, func(conn *pgxpool.Conn) error {
		done, err := appliedVersions(ctx, conn)
		if err != nil {
			return err
		}

		pending := pendingMigrations(m.migrations, done, steps)
		for i, mig := range pending {
			log.Info().Int("version", mig.Version).Str("name", mig.Name).
				Msgf("running migration %d/%d", i+1, len(pending))

			if err := runStep(ctx, conn, mig.Up,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
				mig.Version, mig.Name); err != nil {
				return fmt.Errorf("migration %04d_%s failed: %w", mig.Version, mig.Name, err)
			}
			applied++
		}
		return nil
	})
	return applied, err
}

// Down rolls back the last steps applied migrations. steps <= 0 means one.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	rolledBack := 0
	err := m.withLock(ctx, func(conn *pgxpool.Conn) error {
		done, err := appliedVersions(ctx, conn)
		if err != nil {
			return err
		}

		targets, err := rollbackMigrations(m.migrations, done, steps)
		if err != nil {
			return err
		}
		for _, mig := range targets {
			log.Info().Int("version", mig.Version).Str("name", mig.Name).Msg("rolling back migration")

			if err := runStep(ctx, conn, mig.Down,
				`DELETE FROM schema_migrations WHERE version = $1`,
				mig.Version); err != nil {
				return fmt.Errorf("rollback %04d_%s failed: %w", mig.Version, mig.Name, err)
			}
			rolledBack++
		}
		return nil
	})
	return rolledBack, err
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if _, err := m.pool.Exec(ctx, createSchemaMigrationsTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	rows, err := m.pool.Query(ctx, `SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	appliedAt := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("failed to scan migration record: %w", err)
		}
		appliedAt[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, mig := range m.migrations {
		s := MigrationStatus{Version: mig.Version, Name: mig.Name}
		if at, ok := appliedAt[mig.Version]; ok {
			s.Applied = true
			s.AppliedAt = &at
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// withLock runs fn on a single connection holding the migration advisory
// lock. Advisory locks are per session, so lock and unlock must share it.
func (m *Migrator) withLock(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, migrationLockID); err != nil {
			log.Error().Err(err).Msg("failed to release migration lock")
		}
	}()

	if _, err := conn.Exec(ctx, createSchemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	return fn(conn)
}

func runStep(ctx context.Context, conn *pgxpool.Conn, script, record string, args ...any) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, script); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, record, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit(ctx)
}

func appliedVersions(ctx context.Context, conn *pgxpool.Conn) (map[int]bool, error) {
	rows, err := conn.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to scan applied migrations: %w", err)
	}

	done := make(map[int]bool, len(versions))
	for _, v := range versions {
		done[v] = true
	}
	return done, nil
}

func pendingMigrations(all []Migration, done map[int]bool, steps int) []Migration {
	var pending []Migration
	for _, mig := range all {
		if done[mig.Version] {
			continue
		}
		pending = append(pending, mig)
		if steps > 0 && len(pending) == steps {
			break
		}
	}
	return pending
}

func rollbackMigrations(all []Migration, done map[int]bool, steps int) ([]Migration, error) {
	if steps <= 0 {
		steps = 1
	}

	byVersion := make(map[int]Migration, len(all))
	for _, mig := range all {
		byVersion[mig.Version] = mig
	}

	versions := make([]int, 0, len(done))
	for v := range done {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(versions)))

	var targets []Migration
	for _, v := range versions {
		if len(targets) == steps {
			break
		}
		mig, ok := byVersion[v]
		if !ok {
			return nil, fmt.Errorf("applied migration %04d is unknown to this binary", v)
		}
		targets = append(targets, mig)
	}
	return targets, nil
}

const createSchemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

var Migrations = []Migration{
	{Version: 1, Name: "create_users", Up: createUsersTable, Down: `DROP TABLE IF EXISTS users;`},
	{Version: 2, Name: "create_planets", Up: createPlanetsTable, Down: `DROP TABLE IF EXISTS planets;`},
	{Version: 3, Name: "create_characters", Up: createCharactersTable, Down: `DROP TABLE IF EXISTS characters;`},
	{Version: 4, Name: "create_fav_planets", Up: createFavPlanetsTable, Down: `DROP TABLE IF EXISTS fav_planets;`},
	{Version: 5, Name: "create_fav_characters", Up: createFavCharactersTable, Down: `DROP TABLE IF EXISTS fav_characters;`},
	{Version: 6, Name: "unique_favorite_pairs", Up: addFavoriteUniqueConstraints, Down: dropFavoriteUniqueConstraints},
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  user_name VARCHAR(120) NOT NULL UNIQUE,
  email VARCHAR(120) NOT NULL UNIQUE,
  password TEXT NOT NULL,
  is_active BOOLEAN NOT NULL DEFAULT TRUE
);
`

const createPlanetsTable = `
CREATE TABLE IF NOT EXISTS planets (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(250) NOT NULL,
  img_url VARCHAR(500)
);
`

const createCharactersTable = `
CREATE TABLE IF NOT EXISTS characters (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(250) NOT NULL,
  img_url VARCHAR(500)
);
`

const createFavPlanetsTable = `
CREATE TABLE IF NOT EXISTS fav_planets (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id),
  planet_id BIGINT NOT NULL REFERENCES planets(id)
);

CREATE INDEX IF NOT EXISTS idx_fav_planets_user_id ON fav_planets(user_id);
CREATE INDEX IF NOT EXISTS idx_fav_planets_planet_id ON fav_planets(planet_id);
`

const createFavCharactersTable = `
CREATE TABLE IF NOT EXISTS fav_characters (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id),
  character_id BIGINT NOT NULL REFERENCES characters(id)
);

CREATE INDEX IF NOT EXISTS idx_fav_characters_user_id ON fav_characters(user_id);
CREATE INDEX IF NOT EXISTS idx_fav_characters_character_id ON fav_characters(character_id);
`

const addFavoriteUniqueConstraints = `
ALTER TABLE fav_planets
  ADD CONSTRAINT uq_fav_planets_user_planet UNIQUE (user_id, planet_id);

ALTER TABLE fav_characters
  ADD CONSTRAINT uq_fav_characters_user_character UNIQUE (user_id, character_id);
`

const dropFavoriteUniqueConstraints = `
ALTER TABLE fav_characters DROP CONSTRAINT IF EXISTS uq_fav_characters_user_character;
ALTER TABLE fav_planets DROP CONSTRAINT IF EXISTS uq_fav_planets_user_planet;
`
