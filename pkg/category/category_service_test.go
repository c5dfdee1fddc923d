package category_test

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"WebFood-API/internal/mocks"
	"WebFood-API/pkg/category"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryService_AddCategory(t *testing.T) {
	repo := new(mocks.CategoryRepository)
	service := category.NewCategoryService(repo)
	ctx := context.Background()

	_, err := service.AddCategory(ctx, domain.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrCategoryNameRequired)

	repo.On("AddCategory", ctx, mock.AnythingOfType("*entities.Category")).
		Run(func(args mock.Arguments) { args.Get(1).(*entities.Category).ID = 5 }).
		Return(nil).Once()

	res, err := service.AddCategory(ctx, domain.CategoryRequest{Name: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryResponse{ID: 5, Name: "Drinks"}, res)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name        string
		found       bool
		hasFoods    bool
		deleteErr   error
		expectedErr error
	}{
		{name: "not_found", expectedErr: domain.ErrCategoryNotFound},
		{name: "has_foods", found: true, hasFoods: true, expectedErr: domain.ErrCategoryInUse},
		{name: "foreign_key_race", found: true, deleteErr: gorm.ErrForeignKeyViolated, expectedErr: domain.ErrCategoryInUse},
		{name: "success", found: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.CategoryRepository)
			service := category.NewCategoryService(repo)
			ctx := context.Background()

			if testCase.found {
				repo.On("GetCategoryByID", ctx, uint(2)).Return(&entities.Category{ID: 2, Name: "Fast food"}, nil)
			} else {
				repo.On("GetCategoryByID", ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)
			}
			repo.On("HasFoods", ctx, uint(2)).Return(testCase.hasFoods, nil)
			repo.On("DeleteCategory", ctx, uint(2)).Return(int64(1), testCase.deleteErr)

			err := service.DeleteCategory(ctx, 2)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
