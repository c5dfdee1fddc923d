package domain

import (
	"strings"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetUser        = "user retrieved successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessCreateUser     = "user created successfully"
	MessageSuccessForgotPassword = "a verification code has been sent to your email"
	MessageSuccessResetPassword  = "password has been reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUser        = "failed to retrieve user"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedCreateUser     = "failed to create user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedForgotPassword = "failed to send verification code"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound         = NewNotFoundError("user not found")
	ErrEmailAlreadyExists   = NewValidationError("email already exists")
	ErrEmailNotFound        = NewUnauthorizedError("email not found")
	ErrWrongPassword        = NewUnauthorizedError("wrong password")
	ErrEmailRequired        = NewValidationError("email is required")
	ErrEmailNotRegistered   = NewValidationError("email is not registered")
	ErrOldPasswordRequired  = NewValidationError("old password is required to set a new password")
	ErrOldPasswordIncorrect = NewValidationError("old password is incorrect")
	ErrInvalidRole          = NewValidationError("role must be User or Admin")
	ErrUserHasOrders        = NewConflictError("user still has orders")
	ErrResetCodeRequired    = NewValidationError("email and code are required")
	ErrResetCodeFormat      = NewValidationError("code must be 6 digits")
	ErrResetCodeNotFound    = NewValidationError("reset code not found")
	ErrResetCodeExpired     = NewValidationError("reset code has expired")
	ErrResetCodeMismatch    = NewValidationError("reset code is incorrect")
)

// NormalizeEmail is applied before any email is stored, looked up or used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const (
	ResetCodeLength = 6
	ResetCodeTTL    = 10 * time.Minute

	// DefaultResetPassword replaces the password after a verified reset.
	DefaultResetPassword = "123456789"
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email,max=100"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	CreateUserRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email,max=100"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"omitempty,oneof=User Admin"`
	}

	UpdateUserRequest struct {
		Name        string `json:"name" validate:"omitempty,max=100"`
		Email       string `json:"email" validate:"omitempty,email,max=100"`
		Role        string `json:"role" validate:"omitempty,oneof=User Admin"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password" validate:"omitempty,min=6"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email"`
	}

	VerifyResetCodeRequest struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}

	ForgotPasswordResponse struct {
		Email string `json:"email"`
	}

	ResetPasswordResponse struct {
		NewPassword string `json:"new_password"`
	}

	UserResponse struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	AuthResponse struct {
		Token     string       `json:"token"`
		ExpiresIn int64        `json:"expires_in"`
		User      UserResponse `json:"user"`
	}

	ResetCode struct {
		Code      string    `json:"code"`
		ExpiresAt time.Time `json:"expires_at"`
	}
)
