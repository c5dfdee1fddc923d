package promotion_test

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"WebFood-API/internal/mocks"
	"WebFood-API/pkg/promotion"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var t0 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestPromotionService_CreatePromotion(t *testing.T) {
	tests := []struct {
		name        string
		req         domain.CreatePromotionRequest
		codeExists  bool
		expectedErr error
	}{
		{name: "empty_code", req: domain.CreatePromotionRequest{Code: " "}, expectedErr: domain.ErrPromotionCodeRequired},
		{name: "duplicate_code", req: domain.CreatePromotionRequest{Code: "SAVE10"}, codeExists: true, expectedErr: domain.ErrPromotionCodeExists},
		{
			name:        "start_after_end",
			req:         domain.CreatePromotionRequest{Code: "SAVE10", StartDate: timePtr(t0.Add(48 * time.Hour)), EndDate: timePtr(t0)},
			expectedErr: domain.ErrPromotionInvalidDateRange,
		},
		{name: "discount_over_100", req: domain.CreatePromotionRequest{Code: "SAVE10", DiscountPercent: intPtr(101)}, expectedErr: domain.ErrPromotionInvalidDiscount},
		{name: "discount_negative", req: domain.CreatePromotionRequest{Code: "SAVE10", DiscountPercent: intPtr(-1)}, expectedErr: domain.ErrPromotionInvalidDiscount},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.PromotionRepository)
			service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
			ctx := context.Background()
			repo.On("CodeExists", ctx, "SAVE10", uint(0)).Return(testCase.codeExists, nil)

			_, err := service.CreatePromotion(ctx, testCase.req)

			assert.ErrorIs(t, err, testCase.expectedErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "AddPromotion", mock.Anything, mock.Anything)
		})
	}
}

func TestPromotionService_CreatePromotionDefaults(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()

	repo.On("CodeExists", ctx, "WELCOME", uint(0)).Return(false, nil)
	repo.On("AddPromotion", ctx, mock.AnythingOfType("*entities.Promotion")).
		Run(func(args mock.Arguments) { args.Get(1).(*entities.Promotion).ID = 1 }).
		Return(nil)

	res, err := service.CreatePromotion(ctx, domain.CreatePromotionRequest{Code: "WELCOME"})

	require.NoError(t, err)
	assert.Equal(t, t0, res.StartDate)
	assert.Equal(t, t0.Add(30*24*time.Hour), res.EndDate)
	assert.Nil(t, res.DiscountPercent)
}

func TestPromotionService_CreatePromotionStoresUTC(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	nowWIB := t0.In(wib)
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return nowWIB })
	ctx := context.Background()

	var saved *entities.Promotion
	repo.On("CodeExists", ctx, "WELCOME", uint(0)).Return(false, nil)
	repo.On("AddPromotion", ctx, mock.AnythingOfType("*entities.Promotion")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entities.Promotion)
			saved.ID = 1
		}).
		Return(nil)

	_, err := service.CreatePromotion(ctx, domain.CreatePromotionRequest{
		Code:    "WELCOME",
		EndDate: timePtr(time.Date(2025, 3, 2, 7, 0, 0, 0, wib)),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, time.UTC, saved.StartDate.Location())
	assert.Equal(t, time.UTC, saved.EndDate.Location())
	assert.True(t, saved.StartDate.Equal(t0))
	assert.True(t, saved.EndDate.Equal(t0.Add(24*time.Hour)))

	// a promotion created "now" is immediately valid
	repo.On("GetPromotionByCode", ctx, "WELCOME").Return(saved, nil)
	res, err := service.ValidateCode(ctx, "WELCOME")
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestPromotionService_CreatePromotionUniqueIndexRace(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()

	repo.On("CodeExists", ctx, "SAVE10", uint(0)).Return(false, nil)
	repo.On("AddPromotion", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.CreatePromotion(ctx, domain.CreatePromotionRequest{Code: "SAVE10"})

	assert.ErrorIs(t, err, domain.ErrPromotionCodeExists)
}

func TestPromotionService_ValidateCodeWindow(t *testing.T) {
	stored := &entities.Promotion{
		ID:              1,
		Code:            "SAVE10",
		DiscountPercent: intPtr(10),
		StartDate:       t0,
		EndDate:         t0.Add(30 * 24 * time.Hour),
	}

	tests := []struct {
		name        string
		at          time.Time
		expectedErr error
	}{
		{name: "before_start", at: t0.Add(-time.Hour), expectedErr: domain.ErrPromotionNotYetActive},
		{name: "day_one", at: t0.Add(24 * time.Hour)},
		{name: "day_thirty_one", at: t0.Add(31 * 24 * time.Hour), expectedErr: domain.ErrPromotionExpired},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.PromotionRepository)
			service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return testCase.at })
			ctx := context.Background()
			repo.On("GetPromotionByCode", ctx, "SAVE10").Return(stored, nil)

			res, err := service.ValidateCode(ctx, "SAVE10")

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Equal(t, "SAVE10", res.Promotion.Code)
		})
	}
}

func TestPromotionService_ValidateUnknownCode(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()
	repo.On("GetPromotionByCode", ctx, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ValidateCode(ctx, "NOPE")

	assert.ErrorIs(t, err, domain.ErrPromotionCodeNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPromotionService_UpdatePromotion(t *testing.T) {
	newStored := func() *entities.Promotion {
		return &entities.Promotion{ID: 1, Code: "SAVE10", StartDate: t0, EndDate: t0.Add(10 * 24 * time.Hour)}
	}

	t.Run("merged_range_is_checked", func(t *testing.T) {
		repo := new(mocks.PromotionRepository)
		service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
		ctx := context.Background()
		repo.On("GetPromotionByID", ctx, uint(1)).Return(newStored(), nil)

		err := service.UpdatePromotion(ctx, 1, domain.UpdatePromotionRequest{StartDate: timePtr(t0.Add(20 * 24 * time.Hour))})

		assert.ErrorIs(t, err, domain.ErrPromotionInvalidDateRange)
	})

	t.Run("same_code_skips_uniqueness", func(t *testing.T) {
		repo := new(mocks.PromotionRepository)
		service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
		ctx := context.Background()
		stored := newStored()
		repo.On("GetPromotionByID", ctx, uint(1)).Return(stored, nil)
		repo.On("UpdatePromotion", ctx, stored).Return(nil)

		err := service.UpdatePromotion(ctx, 1, domain.UpdatePromotionRequest{Code: strPtr("SAVE10"), DiscountPercent: intPtr(15)})

		require.NoError(t, err)
		assert.Equal(t, 15, *stored.DiscountPercent)
		repo.AssertNotCalled(t, "CodeExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("code_taken_by_other", func(t *testing.T) {
		repo := new(mocks.PromotionRepository)
		service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
		ctx := context.Background()
		repo.On("GetPromotionByID", ctx, uint(1)).Return(newStored(), nil)
		repo.On("CodeExists", ctx, "SAVE20", uint(1)).Return(true, nil)

		err := service.UpdatePromotion(ctx, 1, domain.UpdatePromotionRequest{Code: strPtr("SAVE20")})

		assert.ErrorIs(t, err, domain.ErrPromotionCodeExists)
	})

	t.Run("not_found", func(t *testing.T) {
		repo := new(mocks.PromotionRepository)
		service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
		ctx := context.Background()
		repo.On("GetPromotionByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		err := service.UpdatePromotion(ctx, 9, domain.UpdatePromotionRequest{})

		assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
	})
}

func TestPromotionService_DeletePromotion(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()

	repo.On("GetPromotionByID", ctx, uint(1)).Return(&entities.Promotion{ID: 1}, nil)
	repo.On("IsPromotionUsed", ctx, uint(1)).Return(true, nil).Once()

	err := service.DeletePromotion(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPromotionInUse)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// orders referencing it were removed
	repo.On("IsPromotionUsed", ctx, uint(1)).Return(false, nil).Once()
	repo.On("DeletePromotion", ctx, uint(1)).Return(int64(1), nil).Once()

	assert.NoError(t, service.DeletePromotion(ctx, 1))
	repo.AssertExpectations(t)
}

func TestPromotionService_DeletePromotionForeignKeyRace(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()

	repo.On("GetPromotionByID", ctx, uint(1)).Return(&entities.Promotion{ID: 1}, nil)
	repo.On("IsPromotionUsed", ctx, uint(1)).Return(false, nil)
	repo.On("DeletePromotion", ctx, uint(1)).Return(int64(0), gorm.ErrForeignKeyViolated)

	err := service.DeletePromotion(ctx, 1)

	assert.ErrorIs(t, err, domain.ErrPromotionInUse)
}

func TestPromotionService_GetActivePromotions(t *testing.T) {
	repo := new(mocks.PromotionRepository)
	service := promotion.NewPromotionServiceWithClock(repo, func() time.Time { return t0 })
	ctx := context.Background()

	repo.On("GetActivePromotions", ctx, t0).Return([]*entities.Promotion{{ID: 2, Code: "NOW"}}, nil)

	res, err := service.GetActivePromotions(ctx)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "NOW", res[0].Code)
}
