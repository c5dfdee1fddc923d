package user

import (
	"WebFood-API/domain"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetCodeStore keeps one pending reset code per email. Get reports found=false
// when nothing is stored; expiry is decided by the caller.
type ResetCodeStore interface {
	Save(ctx context.Context, email string, code domain.ResetCode) error
	Get(ctx context.Context, email string) (domain.ResetCode, bool, error)
	Delete(ctx context.Context, email string) error
	PurgeExpired(ctx context.Context) error
}

func resetKey(email string) string {
	return domain.NormalizeEmail(email)
}

type memoryResetCodeStore struct {
	mu    sync.Mutex
	codes map[string]domain.ResetCode
	now   func() time.Time
}

func NewMemoryResetCodeStore() ResetCodeStore {
	return NewMemoryResetCodeStoreWithClock(time.Now)
}

func NewMemoryResetCodeStoreWithClock(now func() time.Time) ResetCodeStore {
	return &memoryResetCodeStore{
		codes: make(map[string]domain.ResetCode),
		now:   now,
	}
}

func (s *memoryResetCodeStore) Save(_ context.Context, email string, code domain.ResetCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[resetKey(email)] = code
	return nil
}

func (s *memoryResetCodeStore) Get(_ context.Context, email string) (domain.ResetCode, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[resetKey(email)]
	return code, ok, nil
}

func (s *memoryResetCodeStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, resetKey(email))
	return nil
}

func (s *memoryResetCodeStore) PurgeExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for email, code := range s.codes {
		if now.After(code.ExpiresAt) {
			delete(s.codes, email)
		}
	}
	return nil
}

type redisResetCodeStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisResetCodeStore(client *redis.Client) ResetCodeStore {
	return &redisResetCodeStore{
		client: client,
		prefix: "reset-code:",
		now:    time.Now,
	}
}

func (s *redisResetCodeStore) key(email string) string {
	return s.prefix + resetKey(email)
}

func (s *redisResetCodeStore) Save(ctx context.Context, email string, code domain.ResetCode) error {
	payload, err := json.Marshal(code)
	if err != nil {
		return err
	}
	ttl := code.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, email)
	}
	return s.client.Set(ctx, s.key(email), payload, ttl).Err()
}

func (s *redisResetCodeStore) Get(ctx context.Context, email string) (domain.ResetCode, bool, error) {
	payload, err := s.client.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ResetCode{}, false, nil
	}
	if err != nil {
		return domain.ResetCode{}, false, err
	}

	var code domain.ResetCode
	if err := json.Unmarshal(payload, &code); err != nil {
		return domain.ResetCode{}, false, err
	}
	return code, true, nil
}

func (s *redisResetCodeStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.key(email)).Err()
}

// PurgeExpired is a no-op, redis drops the keys on TTL.
func (s *redisResetCodeStore) PurgeExpired(_ context.Context) error {
	return nil
}
