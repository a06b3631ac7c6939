package store

import "context"

// Scoped namespaces every key with a session prefix so multiple shopper
// sessions can share one backing store, mirroring per-browser storage.
func Scoped(s Store, prefix string) Store {
	return &scopedStore{inner: s, prefix: prefix}
}

type scopedStore struct {
	inner  Store
	prefix string
}

func (s *scopedStore) Read(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Read(ctx, s.prefix+":"+key)
}

func (s *scopedStore) Write(ctx context.Context, key string, value []byte) error {
	return s.inner.Write(ctx, s.prefix+":"+key, value)
}
