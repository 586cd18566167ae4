package seqmark

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func TestMarkedStates(t *testing.T) {
	n := Normal(uint64(7))
	require.True(t, n.IsNormal())
	require.False(t, n.IsTombstone())

	d, ok := n.Data()
	require.True(t, ok)
	require.Equal(t, uint64(7), d)
	require.Equal(t, mo.Some(uint64(7)), n.DataOption())

	tomb := Tombstone[uint64]()
	require.False(t, tomb.IsNormal())
	require.True(t, tomb.IsTombstone())

	_, ok = tomb.Data()
	require.False(t, ok)
	require.Equal(t, mo.None[uint64](), tomb.DataOption())
}

func TestMarkedString(t *testing.T) {
	require.Equal(t, "(foo)", Normal("foo").String())
	require.Equal(t, "(3)", Normal(3).String())
	require.Equal(t, "TOMBSTONE", Tombstone[string]().String())
}

func TestCompareMarked(t *testing.T) {
	cases := []struct {
		name string
		a, b Marked[uint64]
		want int
	}{
		{"equal normals", Normal(uint64(1)), Normal(uint64(1)), 0},
		{"normal payload lt", Normal(uint64(1)), Normal(uint64(2)), -1},
		{"normal payload gt", Normal(uint64(2)), Normal(uint64(1)), 1},
		{"normal lt tombstone", Normal(uint64(99)), Tombstone[uint64](), -1},
		{"tombstone gt normal", Tombstone[uint64](), Normal(uint64(99)), 1},
		{"tombstones equal", Tombstone[uint64](), Tombstone[uint64](), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CompareMarked(tc.a, tc.b))
		})
	}
}

func TestCompareMarkedFunc(t *testing.T) {
	// Reversed payload comparator flips only the payload level.
	rev := func(a, b uint64) int { return cmp.Compare(b, a) }
	require.Equal(t, -1, CompareMarkedFunc(Normal(uint64(3)), Normal(uint64(1)), rev))
	require.Equal(t, 1, CompareMarkedFunc(Tombstone[uint64](), Normal(uint64(1)), rev))
}

func TestMapMarked(t *testing.T) {
	n := MapMarked(Normal(uint64(41)), func(d uint64) string { return strconv.FormatUint(d+1, 10) })
	require.Equal(t, Normal("42"), n)

	called := false
	tomb := MapMarked(Tombstone[uint64](), func(d uint64) string {
		called = true
		return ""
	})
	require.Equal(t, Tombstone[string](), tomb)
	require.False(t, called, "transform must never run on a tombstone")
}

func TestTryMapMarked(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("ok", func(t *testing.T) {
		got, err := TryMapMarked(Normal(uint64(1)), func(d uint64) (uint64, error) { return d + 1, nil })
		require.NoError(t, err)
		require.Equal(t, Normal(uint64(2)), got)
	})

	t.Run("error passes through unwrapped", func(t *testing.T) {
		_, err := TryMapMarked(Normal(uint64(1)), func(d uint64) (uint64, error) { return 0, errBoom })
		require.Equal(t, errBoom, err)
	})

	t.Run("tombstone skips transform", func(t *testing.T) {
		got, err := TryMapMarked(Tombstone[uint64](), func(d uint64) (uint64, error) { return 0, errBoom })
		require.NoError(t, err)
		require.Equal(t, Tombstone[uint64](), got)
	})
}
