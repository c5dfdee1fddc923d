package order

import (
	"WebFood-API/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
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

func TestOrderRepository_UpdateOrderStatusTouchesOneColumn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET "status"=\$1 WHERE id = \$2`).
		WithArgs("Delivered", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.UpdateOrderStatus(context.Background(), 5, "Delivered")

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrderIsAtomic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_details"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	order := &entities.Order{
		UserID:      7,
		TotalAmount: decimal.NewFromInt(11),
		Status:      "Pending",
		OrderDate:   time.Now(),
		OrderDetails: []*entities.OrderDetail{
			{FoodID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("5.50")},
		},
	}
	err := repo.CreateOrder(context.Background(), order)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_details"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100).AddRow(101))
	mock.ExpectCommit()

	order := &entities.Order{
		UserID:      7,
		TotalAmount: decimal.NewFromInt(14),
		Status:      "Pending",
		OrderDate:   time.Now(),
		OrderDetails: []*entities.OrderDetail{
			{FoodID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("5.50")},
			{FoodID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(3)},
		},
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))

	assert.Equal(t, uint(10), order.ID)
	require.Len(t, order.OrderDetails, 2)
	assert.Equal(t, uint(10), order.OrderDetails[0].OrderID)
	assert.Equal(t, uint(10), order.OrderDetails[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_DeleteOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_details" WHERE order_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.DeleteOrder(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
