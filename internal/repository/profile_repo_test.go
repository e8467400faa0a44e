package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryProfileRepository_GetPut(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	data, err := repo.Get(ctx, "missing")
	if err != nil || data != nil {
		t.Fatalf("expected nil,nil for missing key; got %q,%v", data, err)
	}

	payload := []byte(`{"name":"Asha"}`)
	if err := repo.Put(ctx, "k", payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	payload[2] = 'X'

	got, err := repo.Get(ctx, "k")
	if err != nil || string(got) != `{"name":"Asha"}` {
		t.Fatalf("expected stored copy, got %q,%v", got, err)
	}
}

func TestBoltProfileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profiles.db")

	repo, err := NewBoltProfileRepository(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	data, err := repo.Get(ctx, "swasthya-user-profile")
	if err != nil || data != nil {
		t.Fatalf("expected nil,nil for missing key; got %q,%v", data, err)
	}
	if err := repo.Put(ctx, "swasthya-user-profile", []byte(`{"age":2}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewBoltProfileRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "swasthya-user-profile")
	if err != nil || string(got) != `{"age":2}` {
		t.Fatalf("expected persisted profile, got %q,%v", got, err)
	}
}

type mockRedisKV struct {
	values     map[string]string
	lastSetKey string
	lastSetTTL time.Duration
	getErr     error
	setErr     error
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	v, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	if b, ok := value.([]byte); ok {
		m.values[key] = string(b)
	}
	cmd.SetVal("OK")
	return cmd
}

func TestRedisProfileRepository_GetPut(t *testing.T) {
	ctx := context.Background()
	mock := &mockRedisKV{values: map[string]string{}}
	repo := &RedisProfileRepository{client: mock, timeout: time.Second}

	data, err := repo.Get(ctx, "swasthya-user-profile:abc")
	if err != nil || data != nil {
		t.Fatalf("expected nil,nil on redis.Nil; got %q,%v", data, err)
	}

	if err := repo.Put(ctx, "swasthya-user-profile:abc", []byte(`{"name":"Ravi"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if mock.lastSetKey != "swasthya-user-profile:abc" || mock.lastSetTTL != 0 {
		t.Fatalf("unexpected set call key=%q ttl=%v", mock.lastSetKey, mock.lastSetTTL)
	}

	got, err := repo.Get(ctx, "swasthya-user-profile:abc")
	if err != nil || string(got) != `{"name":"Ravi"}` {
		t.Fatalf("unexpected get %q,%v", got, err)
	}
}

func TestRedisProfileRepository_Errors(t *testing.T) {
	ctx := context.Background()
	mock := &mockRedisKV{values: map[string]string{}, getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	repo := &RedisProfileRepository{client: mock, timeout: time.Second}

	if _, err := repo.Get(ctx, "k"); err == nil {
		t.Fatalf("expected get error")
	}
	if err := repo.Put(ctx, "k", []byte("{}")); err == nil {
		t.Fatalf("expected put error")
	}
	if NewRedisProfileRepository(nil) != nil {
		t.Fatalf("expected nil repository for nil client")
	}
}
