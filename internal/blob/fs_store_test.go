package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	uri, err := s.Put(ctx, "orders/extraction.json", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Contains(t, uri, "file://")

	got, err := s.Get(ctx, uri)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, s.Delete(ctx, uri))
	_, err = s.Get(ctx, uri)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStorePutIsIdempotent(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	uri1, err := s.Put(ctx, "same-hint", []byte("payload"))
	require.NoError(t, err)
	uri2, err := s.Put(ctx, "same-hint", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, uri1, uri2, "identical bytes map to the same uri")
}

func TestFSStoreRejectsForeignURI(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "s3://bucket/key")
	require.Error(t, err)
}
