package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	v, _, _ = s.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, found, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	out, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[1] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestWithPrefixIsolatesNamespaces(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()

	alice := WithPrefix(base, "u:1:")
	bob := WithPrefix(base, "u:2:")

	require.NoError(t, alice.Set(ctx, "state", []byte("a")))
	require.NoError(t, bob.Set(ctx, "state", []byte("b")))

	v, found, err := alice.Get(ctx, "state")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("a"), v)

	require.NoError(t, alice.Delete(ctx, "state"))

	_, found, _ = alice.Get(ctx, "state")
	assert.False(t, found)

	v, found, _ = bob.Get(ctx, "state")
	require.True(t, found)
	assert.Equal(t, []byte("b"), v)

	// The underlying store sees the prefixed keys.
	v, found, _ = base.Get(ctx, "u:2:state")
	require.True(t, found)
	assert.Equal(t, []byte("b"), v)
}
