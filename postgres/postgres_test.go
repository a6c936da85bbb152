package postgres_test

import (
	"context"
	"testing"
	"time"

	"moviesearch/postgres"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func TestConnection(t *testing.T) {
	dbName, dbUser, dbPass := "catalog", "catalog", "123456"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	var currentUser string
	err := db.Raw("SELECT current_user").Scan(&currentUser).Error
	assert.NoError(t, err)
	assert.Equal(t, dbUser, currentUser)

	var tables int
	err = db.Raw("SELECT count(*) FROM information_schema.tables WHERE table_name = 'movies'").Scan(&tables).Error
	assert.NoError(t, err)
	assert.Equal(t, 1, tables, "migrations should create the movies table")
}

func TestNewConnection_Error(t *testing.T) {
	_, err := postgres.NewConnection(postgres.Options{
		DBName:   "nonexistent",
		DBUser:   "invaliduser",
		Password: "wrongpass",
		Host:     "invalidhost",
		Port:     "5432",
		SSLMode:  true,
	})

	assert.Error(t, err)
}

func MigrateTestDatabase(t testing.TB, db *gorm.DB, migrationPath string) {
	t.Helper()

	sqlDB, err := db.DB()
	require.NoError(t, err)

	_, err = migrate.Exec(sqlDB, "postgres", &migrate.FileMigrationSource{Dir: migrationPath}, migrate.Up)
	require.NoError(t, err)
}

func CreateConnection(t testing.TB, dbName string, dbUser string, dbPass string) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	cont := SetupPostgresContainer(t, dbName, dbUser, dbPass)
	host, err := cont.Host(ctx)
	require.NoError(t, err)
	port, err := cont.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:       dbName,
		DBUser:       dbUser,
		Password:     dbPass,
		Host:         host,
		Port:         port.Port(),
		MaxOpenConns: 5,
	})
	require.NoError(t, err)

	return db
}

func SetupPostgresContainer(t testing.TB, dbname, user, password string) testcontainers.Container {
	t.Helper()
	ctx := context.Background()
	cont, err := pgcontainer.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		pgcontainer.WithDatabase(dbname),
		pgcontainer.WithUsername(user),
		pgcontainer.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, cont.Terminate(ctx))
	})

	return cont
}
