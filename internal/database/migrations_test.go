package database

import (
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = func(db *sql.DB, cfg *postgres.Config) (dbdriver.Driver, error) {
		return postgres.WithInstance(db, cfg)
	}
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrationSetup 讓 migration 流程走到 migrateNewWithInstance 為止都成功
func stubMigrationSetup() {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, name := range []string{
		"migrations/000001_create_catalog.up.sql",
		"migrations/000001_create_catalog.down.sql",
	} {
		b, err := migrationsFS.ReadFile(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, b)
	}
	up, _ := migrationsFS.ReadFile("migrations/000001_create_catalog.up.sql")
	require.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS workshops")
	require.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS bookings")
}

func TestRunMigrations(t *testing.T) {
	t.Run("open error", func(t *testing.T) {
		t.Cleanup(restore)
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("driver error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("source error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("migrate init error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return nil, errors.New("mig")
		}
		require.Error(t, RunMigrations("url"))
	})

	t.Run("up error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return fakeMigrator{upErr: errors.New("u")}, nil
		}
		require.Error(t, RunMigrations("url"))
	})

	t.Run("no change is success", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return fakeMigrator{upErr: migrate.ErrNoChange}, nil
		}
		require.NoError(t, RunMigrations("url"))
	})
}

func TestRollbackAll(t *testing.T) {
	t.Run("open error", func(t *testing.T) {
		t.Cleanup(restore)
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RollbackAll("url"))
	})

	t.Run("down error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return fakeMigrator{downErr: errors.New("d")}, nil
		}
		require.Error(t, RollbackAll("url"))
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationSetup()
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return fakeMigrator{downErr: migrate.ErrNoChange}, nil
		}
		require.NoError(t, RollbackAll("url"))
	})
}
