package user

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		CheckEmailExists(ctx context.Context, email string, excludeID uint) (bool, error)
		GetUsers(ctx context.Context) ([]*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdatePassword(ctx context.Context, email string, passwordHash string) error
		DeleteUser(ctx context.Context, id uint) (int64, error)
		HasOrders(ctx context.Context, id uint) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = ?", domain.NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckEmailExists ignores the row with excludeID; pass 0 to check every user.
func (r *userRepository) CheckEmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.User{}).Where("LOWER(email) = ?", domain.NormalizeEmail(email))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("LOWER(email) = ?", domain.NormalizeEmail(email)).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	return result.RowsAffected, result.Error
}

func (r *userRepository) HasOrders(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
