package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsentKey(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(Namespace + "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(Namespace+"profile", []byte(`{"xp":40}`)))

	got, ok, err := s.Get(Namespace + "profile")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"xp":40}`), got)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(Namespace+"k", []byte("a")))
	require.NoError(t, s.Put(Namespace+"k", []byte("b")))

	got, ok, err := s.Get(Namespace + "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("b"), got)
}

func TestDeletePrefixOnlyRemovesNamespace(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(Namespace+"a", []byte("1")))
	require.NoError(t, s.Put(Namespace+"b", []byte("2")))
	require.NoError(t, s.Put("other:c", []byte("3")))

	require.NoError(t, s.DeletePrefix(Namespace))

	_, ok, err := s.Get(Namespace + "a")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.Get("other:c")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryKVMatchesStoreBehavior(t *testing.T) {
	m := NewMemoryKV()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Put(Namespace+"k", []byte("v")))
	got, ok, err := m.Get(Namespace + "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, m.DeletePrefix(Namespace))
	_, ok, err = m.Get(Namespace + "k")
	require.NoError(t, err)
	require.False(t, ok)
}
