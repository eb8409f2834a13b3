package cache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/gofiber/fiber/v2"
)

// SessionStorage lets the fiber session middleware keep its data in the local cache.
type SessionStorage struct {
	manager *cache.Cache[[]byte]
}

var _ fiber.Storage = (*SessionStorage)(nil)

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{manager: cache.New[[]byte](S)}
}

func (v *SessionStorage) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	val, err := v.manager.Get(context.Background(), key)
	if err != nil {
		// A miss is not an error for fiber storages.
		return nil, nil
	}
	return val, nil
}

func (v *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}

	var options []store.Option
	if exp > 0 {
		options = append(options, store.WithExpiration(exp))
	}
	if err := v.manager.Set(context.Background(), key, val, options...); err != nil {
		return err
	}

	R.Wait()
	return nil
}

func (v *SessionStorage) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}
	err := v.manager.Delete(context.Background(), key)
	R.Wait()
	return err
}

func (v *SessionStorage) Reset() error {
	return v.manager.Clear(context.Background())
}

func (v *SessionStorage) Close() error {
	return nil
}
