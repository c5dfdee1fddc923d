package user

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"WebFood-API/internal/utils/mailing"
	"WebFood-API/pkg/jwt"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUserByID(ctx context.Context, id uint) (domain.UserResponse, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) error
		DeleteUser(ctx context.Context, id uint) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (domain.ForgotPasswordResponse, error)
		VerifyResetCode(ctx context.Context, req domain.VerifyResetCodeRequest) (domain.ResetPasswordResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		resetCodes     ResetCodeStore
		mailer         mailing.Mailer
		now            func() time.Time
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, resetCodes ResetCodeStore, mailer mailing.Mailer) UserService {
	return NewUserServiceWithClock(userRepository, jwtService, resetCodes, mailer, time.Now)
}

func NewUserServiceWithClock(userRepository UserRepository, jwtService jwt.JWTService, resetCodes ResetCodeStore, mailer mailing.Mailer, now func() time.Time) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		resetCodes:     resetCodes,
		mailer:         mailer,
		now:            now,
	}
}

func (s *userService) authResponse(user *entities.User) (domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID, user.Email, user.Role)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("generate token: %w", err)
	}
	return domain.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtService.TokenTTL().Seconds()),
		User:      toUserResponse(user),
	}, nil
}

func (s *userService) insertUser(ctx context.Context, name, email, password, role string) (*entities.User, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user created")
	return user, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	user, err := s.insertUser(ctx, req.Name, domain.NormalizeEmail(req.Email), req.Password, domain.RoleUser)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrEmailNotFound
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrWrongPassword
	}

	return s.authResponse(user)
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	return res, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.UserResponse{}, domain.ErrInvalidRole
	}

	user, err := s.insertUser(ctx, req.Name, domain.NormalizeEmail(req.Email), req.Password, role)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	email := domain.NormalizeEmail(req.Email)
	if email != "" && email != user.Email {
		exists, err := s.userRepository.CheckEmailExists(ctx, email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return domain.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Role != "" {
		if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
			return domain.ErrInvalidRole
		}
		user.Role = req.Role
	}

	if req.NewPassword != "" {
		if req.OldPassword == "" {
			return domain.ErrOldPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			return domain.ErrOldPasswordIncorrect
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hasOrders, err := s.userRepository.HasOrders(ctx, id)
	if err != nil {
		return fmt.Errorf("check user orders: %w", err)
	}
	if hasOrders {
		return domain.ErrUserHasOrders
	}

	rows, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrUserHasOrders
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (domain.ForgotPasswordResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return domain.ForgotPasswordResponse{}, domain.ErrEmailRequired
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ForgotPasswordResponse{}, domain.ErrEmailNotRegistered
		}
		return domain.ForgotPasswordResponse{}, err
	}

	code, err := generateResetCode()
	if err != nil {
		return domain.ForgotPasswordResponse{}, fmt.Errorf("generate reset code: %w", err)
	}

	if err := s.resetCodes.Save(ctx, email, domain.ResetCode{
		Code:      code,
		ExpiresAt: s.now().Add(domain.ResetCodeTTL),
	}); err != nil {
		return domain.ForgotPasswordResponse{}, fmt.Errorf("save reset code: %w", err)
	}
	if err := s.resetCodes.PurgeExpired(ctx); err != nil {
		logrus.WithError(err).Warn("failed to purge expired reset codes")
	}

	body := mailing.ResetCodeBody(user.Name, code, int(domain.ResetCodeTTL.Minutes()))
	if err := s.mailer.SendMail(user.Email, "Password reset verification code", body); err != nil {
		return domain.ForgotPasswordResponse{}, fmt.Errorf("send reset code mail: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("password reset code issued")
	return domain.ForgotPasswordResponse{Email: email}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *userService) VerifyResetCode(ctx context.Context, req domain.VerifyResetCodeRequest) (domain.ResetPasswordResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" || req.Code == "" {
		return domain.ResetPasswordResponse{}, domain.ErrResetCodeRequired
	}
	if len(req.Code) != domain.ResetCodeLength || !isDigits(req.Code) {
		return domain.ResetPasswordResponse{}, domain.ErrResetCodeFormat
	}

	stored, found, err := s.resetCodes.Get(ctx, email)
	if err != nil {
		return domain.ResetPasswordResponse{}, fmt.Errorf("load reset code: %w", err)
	}
	if !found {
		return domain.ResetPasswordResponse{}, domain.ErrResetCodeNotFound
	}
	if s.now().After(stored.ExpiresAt) {
		if err := s.resetCodes.Delete(ctx, email); err != nil {
			logrus.WithError(err).Warn("failed to delete expired reset code")
		}
		return domain.ResetPasswordResponse{}, domain.ErrResetCodeExpired
	}
	if stored.Code != req.Code {
		return domain.ResetPasswordResponse{}, domain.ErrResetCodeMismatch
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ResetPasswordResponse{}, domain.ErrEmailNotRegistered
		}
		return domain.ResetPasswordResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(domain.DefaultResetPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ResetPasswordResponse{}, err
	}
	if err := s.userRepository.UpdatePassword(ctx, email, string(hash)); err != nil {
		return domain.ResetPasswordResponse{}, fmt.Errorf("reset password: %w", err)
	}

	if err := s.resetCodes.Delete(ctx, email); err != nil {
		logrus.WithError(err).Warn("failed to delete used reset code")
	}
	return domain.ResetPasswordResponse{NewPassword: domain.DefaultResetPassword}, nil
}
