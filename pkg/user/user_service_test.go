package user_test

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"WebFood-API/internal/mocks"
	"WebFood-API/pkg/jwt"
	"WebFood-API/pkg/user"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	repo    *mocks.UserRepository
	mailer  *mocks.Mailer
	store   user.ResetCodeStore
	service user.UserService
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	jwtService, err := jwt.NewJWTService("user-service-secret-0123456789")
	require.NoError(t, err)

	f := &fixture{
		repo:   new(mocks.UserRepository),
		mailer: new(mocks.Mailer),
		now:    time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }
	f.store = user.NewMemoryResetCodeStoreWithClock(clock)
	f.service = user.NewUserServiceWithClock(f.repo, jwtService, f.store, f.mailer, clock)
	return f
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("CheckEmailExists", ctx, "alice@x.com", uint(0)).Return(false, nil).Once()
	f.repo.On("RegisterUser", ctx, mock.AnythingOfType("*entities.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.User).ID = 1
		}).
		Return(nil).Once()

	res, err := f.service.Register(ctx, domain.RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, domain.UserResponse{ID: 1, Name: "Alice", Email: "alice@x.com", Role: domain.RoleUser}, res.User)
	f.repo.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	t.Run("pre_check", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.On("CheckEmailExists", ctx, "alice@x.com", uint(0)).Return(true, nil).Once()

		_, err := f.service.Register(ctx, domain.RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "secret1"})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.EqualError(t, err, "email already exists")
		f.repo.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})

	t.Run("unique_index", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.On("CheckEmailExists", ctx, "alice@x.com", uint(0)).Return(false, nil).Once()
		f.repo.On("RegisterUser", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()

		_, err := f.service.Register(ctx, domain.RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "secret1"})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUserService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := &entities.User{ID: 3, Name: "Bob", Email: "bob@x.com", Role: domain.RoleAdmin, PasswordHash: hashed(t, "right-pass")}

	f.repo.On("GetUserByEmail", ctx, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
	f.repo.On("GetUserByEmail", ctx, "bob@x.com").Return(stored, nil)

	_, err := f.service.Login(ctx, domain.LoginRequest{Email: "ghost@x.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailNotFound)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.service.Login(ctx, domain.LoginRequest{Email: "bob@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	res, err := f.service.Login(ctx, domain.LoginRequest{Email: "bob@x.com", Password: "right-pass"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), res.User.ID)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)
}

func TestUserService_GetUserByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.On("GetUserByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Me(ctx, 9)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name        string
		req         domain.UpdateUserRequest
		emailTaken  bool
		expectedErr error
	}{
		{name: "new_password_without_old", req: domain.UpdateUserRequest{NewPassword: "brand-new"}, expectedErr: domain.ErrOldPasswordRequired},
		{name: "wrong_old_password", req: domain.UpdateUserRequest{OldPassword: "nope", NewPassword: "brand-new"}, expectedErr: domain.ErrOldPasswordIncorrect},
		{name: "email_taken", req: domain.UpdateUserRequest{Email: "taken@x.com"}, emailTaken: true, expectedErr: domain.ErrEmailAlreadyExists},
		{name: "success", req: domain.UpdateUserRequest{Name: "Bobby", OldPassword: "right-pass", NewPassword: "brand-new"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			stored := &entities.User{ID: 3, Name: "Bob", Email: "bob@x.com", Role: domain.RoleUser, PasswordHash: hashed(t, "right-pass")}

			f.repo.On("GetUserByID", ctx, uint(3)).Return(stored, nil)
			f.repo.On("CheckEmailExists", ctx, "taken@x.com", uint(3)).Return(testCase.emailTaken, nil)
			f.repo.On("UpdateUser", ctx, stored).Return(nil)

			err := f.service.UpdateUser(ctx, 3, testCase.req)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				f.repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bobby", stored.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new")))
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("GetUserByID", ctx, uint(4)).Return(&entities.User{ID: 4}, nil)
	f.repo.On("HasOrders", ctx, uint(4)).Return(true, nil).Once()

	err := f.service.DeleteUser(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrUserHasOrders)
	assert.ErrorIs(t, err, domain.ErrConflict)

	f.repo.On("HasOrders", ctx, uint(4)).Return(false, nil).Once()
	f.repo.On("DeleteUser", ctx, uint(4)).Return(int64(1), nil).Once()

	assert.NoError(t, f.service.DeleteUser(ctx, 4))
	f.repo.AssertExpectations(t)
}

func TestUserService_ForgotPasswordValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "  "})
	assert.ErrorIs(t, err, domain.ErrEmailRequired)

	f.repo.On("GetUserByEmail", ctx, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
	_, err = f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "ghost@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailNotRegistered)
}

func TestUserService_ForgotPasswordMailFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("GetUserByEmail", ctx, "bob@x.com").Return(&entities.User{ID: 3, Name: "Bob", Email: "bob@x.com"}, nil)
	f.mailer.On("SendMail", "bob@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	_, err := f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "bob@x.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}

func issueCode(t *testing.T, f *fixture, email string) string {
	t.Helper()
	ctx := context.Background()
	var mailed string
	f.repo.On("GetUserByEmail", ctx, email).Return(&entities.User{ID: 3, Name: "Bob", Email: email}, nil)
	f.mailer.On("SendMail", email, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { mailed = args.String(2) }).
		Return(nil).Once()

	res, err := f.service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: email})
	require.NoError(t, err)
	assert.Equal(t, email, res.Email)

	stored, found, err := f.store.Get(ctx, email)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored.Code, 6)
	assert.Equal(t, f.now.Add(10*time.Minute), stored.ExpiresAt)
	assert.True(t, strings.Contains(mailed, stored.Code))
	return stored.Code
}

func wrongCode(code string) string {
	if code == "999999" {
		return "100000"
	}
	return "999999"
}

func TestUserService_VerifyResetCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := issueCode(t, f, "bob@x.com")

	f.now = f.now.Add(5 * time.Minute)

	_, err := f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: "12ab56"})
	assert.ErrorIs(t, err, domain.ErrResetCodeFormat)

	_, err = f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: wrongCode(code)})
	assert.ErrorIs(t, err, domain.ErrResetCodeMismatch)

	var newHash string
	f.repo.On("UpdatePassword", ctx, "bob@x.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { newHash = args.String(2) }).
		Return(nil).Once()

	res, err := f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: code})
	require.NoError(t, err)
	assert.Equal(t, "123456789", res.NewPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("123456789")))

	_, err = f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrResetCodeNotFound)
	f.repo.AssertNumberOfCalls(t, "UpdatePassword", 1)
}

func TestUserService_VerifyResetCodeExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := issueCode(t, f, "bob@x.com")

	f.now = f.now.Add(11 * time.Minute)

	_, err := f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrResetCodeExpired)

	_, err = f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "bob@x.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrResetCodeNotFound)
	f.repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_VerifyResetCodeRequiresFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.VerifyResetCode(context.Background(), domain.VerifyResetCodeRequest{Email: "bob@x.com"})

	assert.ErrorIs(t, err, domain.ErrResetCodeRequired)
}

func TestUserService_EmailCaseIsIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("CheckEmailExists", ctx, "alice@x.com", uint(0)).Return(false, nil).Once()
	f.repo.On("RegisterUser", ctx, mock.MatchedBy(func(u *entities.User) bool { return u.Email == "alice@x.com" })).
		Return(nil).Once()
	_, err := f.service.Register(ctx, domain.RegisterRequest{Name: "Alice", Email: " Alice@X.com", Password: "secret1"})
	require.NoError(t, err)

	code := issueCode(t, f, "bob@x.com")
	f.repo.On("UpdatePassword", ctx, "bob@x.com", mock.AnythingOfType("string")).Return(nil).Once()

	_, err = f.service.VerifyResetCode(ctx, domain.VerifyResetCodeRequest{Email: "BOB@x.COM", Code: code})

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}
