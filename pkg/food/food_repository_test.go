package food

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFoodRepository_GetFoodsByCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFoodRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "foods" WHERE category_id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category_id"}).
			AddRow(1, "Burger", "5.50", 2).
			AddRow(4, "Fries", "2.00", 2))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "categories"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Fast food"))

	categoryID := uint(2)
	foods, err := repo.GetFoods(context.Background(), &categoryID)

	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Fries", foods[1].Name)
	require.NotNil(t, foods[0].Category)
	assert.Equal(t, "Fast food", foods[0].Category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodRepository_DeleteFood(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFoodRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "foods" WHERE id = \$1`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.DeleteFood(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodRepository_IsFoodOrdered(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFoodRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "order_details" WHERE food_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	ordered, err := repo.IsFoodOrdered(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, ordered)
	assert.NoError(t, mock.ExpectationsWereMet())
}
