package kvstore

import "context"

// Store is the durable key-value contract the learning state lives behind.
// Get reports found=false for an absent key; Set replaces the value wholesale;
// Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// WithPrefix returns a view of s that prepends prefix to every key. It is used
// to give each chat its own namespace while the callers keep using plain keys.
func WithPrefix(s Store, prefix string) Store {
	return &prefixStore{inner: s, prefix: prefix}
}

type prefixStore struct {
	inner  Store
	prefix string
}

func (p *prefixStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixStore) Set(ctx context.Context, key string, value []byte) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixStore) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}
