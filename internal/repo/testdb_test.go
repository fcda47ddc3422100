package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB поднимает postgres в контейнере и накатывает миграции.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%d user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Int())
	db, err := postgres.Connect(dsn, config.Postgres{MaxOpenConns: 30})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

func createUser(t *testing.T, db *sqlx.DB, email string) entities.User {
	t.Helper()
	user, err := repo.NewUserRepo(db).Create(context.Background(), entities.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Tester",
	})
	require.NoError(t, err)
	return user
}

func createItem(t *testing.T, db *sqlx.DB, name string, price int64, stock int) entities.Item {
	t.Helper()
	item, err := repo.NewItemRepo(db).Create(context.Background(), entities.Item{
		Code:          uuid.NewString(),
		Name:          name,
		Category:      entities.CategoryTop,
		SubCategory:   "shirts",
		Gender:        entities.GenderUnisex,
		Size:          "M",
		Price:         price,
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return item
}
