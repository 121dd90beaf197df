package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedisLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, ttl)
	locker.retry = 5 * time.Millisecond
	return locker, mr
}

func TestRedisLocker_SecondLockWaitsForRelease(t *testing.T) {
	locker, mr := newTestRedisLocker(t, time.Minute)

	release, err := locker.Lock(context.Background(), "booking:k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !mr.Exists(LockPrefix + "booking:k") {
		t.Fatal("lock key should be set in redis")
	}
	if ttl := mr.TTL(LockPrefix + "booking:k"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("lock ttl = %v, want (0, 1m]", ttl)
	}

	acquired := make(chan func(), 1)
	go func() {
		release2, err := locker.Lock(context.Background(), "booking:k")
		if err != nil {
			t.Errorf("second lock: %v", err)
			close(acquired)
			return
		}
		acquired <- release2
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case release2, ok := <-acquired:
		if !ok {
			return
		}
		release2()
	case <-time.After(2 * time.Second):
		t.Fatal("second lock not acquired after release")
	}
	if mr.Exists(LockPrefix + "booking:k") {
		t.Fatal("lock key should be gone after the last release")
	}
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	locker, mr := newTestRedisLocker(t, time.Second)
	key := LockPrefix + "booking:k"

	staleRelease, err := locker.Lock(context.Background(), "booking:k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	// The first holder outlives its TTL and someone else takes the key.
	mr.FastForward(2 * time.Second)
	release, err := locker.Lock(context.Background(), "booking:k")
	if err != nil {
		t.Fatalf("relock after expiry: %v", err)
	}
	holder, err := mr.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	staleRelease()
	if got, err := mr.Get(key); err != nil || got != holder {
		t.Fatalf("stale release touched the new holder's key: got %q (%v), want %q", got, err, holder)
	}

	release()
	if mr.Exists(key) {
		t.Fatal("holder's release should delete the key")
	}
}

func TestRedisLocker_ContextCancelledWhileWaiting(t *testing.T) {
	locker, _ := newTestRedisLocker(t, time.Minute)

	release, err := locker.Lock(context.Background(), "booking:k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, "booking:k"); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("err = %v, want ErrLockTimeout", err)
	}
}

func TestRedisLocker_RedisDown(t *testing.T) {
	locker, mr := newTestRedisLocker(t, time.Minute)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := locker.Lock(ctx, "booking:k"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}
