package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"naplan-prep/internal/config"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations brings the schema up to date. Postgres goes through
// golang-migrate; Oracle, which golang-migrate has no driver for, runs the
// numbered .up.sql files in order and records them in schema_migrations.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, log *zap.Logger) error {
	switch driver {
	case config.DriverPostgres:
		return migratePostgres(db, log)
	case config.DriverOracle:
		return migrateSequential(ctx, db, "migrations/oracle", log)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func migratePostgres(db *sqlx.DB, log *zap.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}
	target, err := pgxmigrate.WithInstance(db.DB, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Schema already up to date")
			return nil
		}
		return fmt.Errorf("could not run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info("Migrations completed successfully", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func migrateSequential(ctx context.Context, db *sqlx.DB, dir string, log *zap.Logger) error {
	files, err := upFiles(migrationsFS, dir)
	if err != nil {
		return err
	}

	if err := ensureVersionTable(ctx, db); err != nil {
		return err
	}
	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version "version" FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, name := range files {
		version := strings.TrimSuffix(name, ".up.sql")
		if done[version] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		if _, err := db.ExecContext(ctx, db.Rebind(`INSERT INTO schema_migrations (version) VALUES (?)`), version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		log.Info("Executed migration", zap.String("file", name))
	}

	log.Info("Migrations completed successfully", zap.Int("files", len(files)))
	return nil
}

func ensureVersionTable(ctx context.Context, db *sqlx.DB) error {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("could not inspect schema: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE schema_migrations (version VARCHAR2(100) PRIMARY KEY)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

// upFiles lists the .up.sql files of dir in version order.
func upFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// SplitStatements splits a script on semicolons that end a line. Oracle
// drivers execute one statement per call.
func SplitStatements(script string) []string {
	var stmts []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(cur.String()), ";")
			stmts = append(stmts, stmt)
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
