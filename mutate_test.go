package fuzztrie

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetRemove(t *testing.T) {
	tr := New(nil, false, false)
	require.NoError(t, tr.Add("foo"))
	assert.True(t, tr.Contains("foo"))
	require.NoError(t, tr.Remove("foo"))
	assert.False(t, tr.Contains("foo"))
}

func TestAddIdempotent(t *testing.T) {
	tr := New([]string{"foo"}, false, false)
	require.NoError(t, tr.Add("foo"))
	assert.Equal(t, 1, tr.Len())
}

func TestRemoveIdempotent(t *testing.T) {
	tr := New([]string{"foo"}, false, false)
	require.NoError(t, tr.Remove("bar"))
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Contains("foo"))
}

func TestAddSplitsEdge(t *testing.T) {
	tr := New([]string{"fooey"}, false, false)
	require.NoError(t, tr.Add("fooing"))
	require.NoError(t, tr.Add("foozle"))
	for _, s := range []string{"fooey", "fooing", "foozle"} {
		assert.True(t, tr.Contains(s), s)
	}
	assert.False(t, tr.Contains("foo"))
	assertCompressed(t, tr.root, true)
}

func TestAddAndRemoveMixedOrder(t *testing.T) {
	data := []string{
		"foo", "fooa", "foob", "fooc", "fooY", "fooZ", "fooaa", "fooab",
		"fooaaa", "fooaaZ", "fooaaaa", "fooaaac", "fooaaaaa", "fooaaaaY",
		"fooaaaaaa", "fooaaaaaaa", "fooaaaaaaaa",
	}
	rand.Seed(1)
	for i := 0; i < 50; i++ {
		tr := New(nil, false, false)
		for _, k := range rand.Perm(len(data)) {
			require.False(t, tr.Contains(data[k]))
			require.NoError(t, tr.Add(data[k]))
		}
		for _, key := range data {
			assert.True(t, tr.Contains(key))
		}
		assertCompressed(t, tr.root, true)
		for _, k := range rand.Perm(len(data)) {
			require.NoError(t, tr.Remove(data[k]))
		}
		assert.Equal(t, 0, tr.Len())
		assertCompressed(t, tr.root, true)
	}
}

func TestRemoveCleansUpChain(t *testing.T) {
	tr := New([]string{"alpha", "alphabet", "alphanumeric", "beta", "delta"}, false, false)
	require.NoError(t, tr.Remove("alpha"))
	assert.False(t, tr.Contains("alpha"))
	assert.True(t, tr.Contains("alphabet"))
	assert.True(t, tr.Contains("alphanumeric"))
	assertCompressed(t, tr.root, true)

	require.NoError(t, tr.Remove("alphanumeric"))
	assert.True(t, tr.Contains("alphabet"))
	assertCompressed(t, tr.root, true)

	require.NoError(t, tr.Remove("alphabet"))
	assert.False(t, tr.Contains("alpha"))
	assert.False(t, tr.Contains("alphabet"))
	assert.False(t, tr.Contains("alphanumeric"))
	assert.True(t, tr.Contains("beta"))
	assert.True(t, tr.Contains("delta"))
	assertCompressed(t, tr.root, true)
}

func TestImmutableRejectsMutation(t *testing.T) {
	tr := New([]string{"foo"}, false, true)
	err := tr.Add("bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.False(t, tr.Contains("bar"))

	err = tr.Remove("foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.True(t, tr.Contains("foo"))
}

func TestRoundTrip(t *testing.T) {
	data := []string{"apple", "apricot", "banana", "band", "bandana"}
	tr1 := New(data, true, false)
	tr2 := New(tr1.Entries(), true, false)
	assert.Equal(t, tr1.Entries(), tr2.Entries())
	assert.Equal(t, tr1.Len(), tr2.Len())
}
