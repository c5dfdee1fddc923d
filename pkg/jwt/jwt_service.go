package jwt

import (
	"WebFood-API/domain"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	MinSecretLength = 16
	TokenTTL        = time.Hour
)

var ErrSecretTooShort = fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)

type (
	JWTService interface {
		GenerateTokenUser(userID uint, email string, role string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserByToken(token string) (*UserClaims, error)
		TokenTTL() time.Duration
	}

	UserClaims struct {
		UserID uint
		Email  string
		Role   string
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey []byte
		ttl       time.Duration
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) (JWTService, error) {
	if len(secretKey) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	return &jwtService{
		secretKey: []byte(secretKey),
		ttl:       TokenTTL,
		now:       time.Now,
	}, nil
}

func (j *jwtService) TokenTTL() time.Duration {
	return j.ttl
}

// GenerateTokenUser puts the user id in the subject claim.
func (j *jwtService) GenerateTokenUser(userID uint, email string, role string) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return j.secretKey, nil
}

// ValidateTokenUser checks signature and expiry only; issuer and audience are not validated.
func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (*UserClaims, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, domain.ErrTokenInvalid
	}

	return &UserClaims{
		UserID: uint(id),
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
