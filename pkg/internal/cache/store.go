package cache

import (
	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/store"
	ristrettoCache "github.com/eko/gocache/store/ristretto/v4"
)

var (
	S store.StoreInterface
	// R is the client behind S, kept to flush buffered writes.
	R *ristretto.Cache
)

func NewStore() error {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	R = client
	S = ristrettoCache.NewRistretto(client)

	return nil
}
