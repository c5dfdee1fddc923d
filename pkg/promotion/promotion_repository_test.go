package promotion

import (
	"WebFood-API/entities"
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var wib = time.FixedZone("WIB", 7*60*60)

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

type sameInstant time.Time

func (s sameInstant) Match(v driver.Value) bool {
	got, ok := v.(time.Time)
	return ok && got.Equal(time.Time(s))
}

func TestPromotionRepository_RoundTripKeepsInstant(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPromotionRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, wib)
	end := start.Add(30 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "promotions"`).
		WithArgs("SAVE10", sqlmock.AnyArg(), sqlmock.AnyArg(), sameInstant(start), sameInstant(end)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddPromotion(ctx, &entities.Promotion{Code: "SAVE10", StartDate: start, EndDate: end}))

	mock.ExpectQuery(`SELECT \* FROM "promotions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "start_date", "end_date"}).
			AddRow(1, "SAVE10", start.UTC(), end.UTC()))

	promotion, err := repo.GetPromotionByID(ctx, 1)

	require.NoError(t, err)
	assert.True(t, promotion.StartDate.Equal(start), "start shifted to %s", promotion.StartDate)
	assert.True(t, promotion.EndDate.Equal(end), "end shifted to %s", promotion.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
