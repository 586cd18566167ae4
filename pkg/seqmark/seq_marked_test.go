package seqmark

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	n := NewNormal(uint64(5), "hello")
	require.True(t, n.IsNormal())
	require.False(t, n.IsTombstone())
	require.Equal(t, InternalSeq(5), n.InternalSeq())

	tomb := NewTombstone[string](5)
	require.False(t, tomb.IsNormal())
	require.True(t, tomb.IsTombstone())
	require.Equal(t, InternalSeq(5), tomb.InternalSeq())

	fromParts := NewSeqMarked(5, Normal("hello"))
	require.Equal(t, n, fromParts)
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b SeqMarked[uint64]
		want int
	}{
		{"same seq same data", norm(1, uint64(1)), norm(1, uint64(1)), 0},
		{"same seq data lt", norm(1, uint64(1)), norm(1, uint64(2)), -1},
		{"same seq data gt", norm(1, uint64(2)), norm(1, uint64(1)), 1},
		{"seq dominates data lt", norm(1, uint64(9)), norm(2, uint64(1)), -1},
		{"seq dominates data gt", norm(2, uint64(1)), norm(1, uint64(9)), 1},
		{"normal lt tombstone same seq", norm(1, uint64(9)), ts[uint64](1), -1},
		{"tombstone gt normal same seq", ts[uint64](1), norm(1, uint64(9)), 1},
		{"tombstone lt newer normal", ts[uint64](1), norm(2, uint64(1)), -1},
		{"newer normal gt tombstone", norm(2, uint64(1)), ts[uint64](1), 1},
		{"tombstones same seq", ts[uint64](1), ts[uint64](1), 0},
		{"tombstone seq lt", ts[uint64](1), ts[uint64](2), -1},
		{"tombstone seq gt", ts[uint64](2), ts[uint64](1), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Compare(tc.a, tc.b))
		})
	}
}

// TestCompareScenario pins the two merge decisions everything else rests on:
// a higher sequence beats any payload, and a delete beats the write it ties
// with.
func TestCompareScenario(t *testing.T) {
	require.Positive(t, Compare(norm(2, "x"), norm(1, "z")))
	require.Negative(t, Compare(norm(2, "x"), ts[string](2)))
}

func TestCompareFunc(t *testing.T) {
	cmpBytes := func(a, b []byte) int { return bytes.Compare(a, b) }

	require.Equal(t, 0, CompareFunc(norm(3, []byte("a")), norm(3, []byte("a")), cmpBytes))
	require.Equal(t, -1, CompareFunc(norm(3, []byte("a")), norm(3, []byte("b")), cmpBytes))
	require.Equal(t, 1, CompareFunc(ts[[]byte](3), norm(3, []byte("z")), cmpBytes))
	require.Equal(t, 0, CompareFunc(ts[[]byte](3), ts[[]byte](3), cmpBytes))
}

func TestUserSeqZeroing(t *testing.T) {
	require.Equal(t, uint64(5), norm(5, "d").UserSeq())
	require.Equal(t, InternalSeq(5), norm(5, "d").InternalSeq())

	tomb := ts[string](5)
	require.Equal(t, uint64(0), tomb.UserSeq(), "a deleted key must never expose a version")
	require.Equal(t, InternalSeq(5), tomb.InternalSeq(), "freshness of the delete itself is kept")
}

func TestAbsence(t *testing.T) {
	require.True(t, NewNotFound[string]().IsAbsent())
	require.True(t, NewNotFound[string]().IsNotFound())
	require.True(t, NewNotFound[string]().IsTombstone())
	require.Equal(t, NewTombstone[string](0), NewNotFound[string]())

	require.True(t, ts[string](0).IsAbsent())
	require.False(t, ts[string](1).IsAbsent(), "a real delete is not absence")
	require.False(t, norm(0, "d").IsAbsent(), "a normal value at seq zero is not absence")
}

func TestOrderKeyProjection(t *testing.T) {
	n := norm(5, "data")
	require.Equal(t, NewNormal(5, struct{}{}), n.OrderKey())

	tomb := ts[string](5)
	require.Equal(t, NewTombstone[struct{}](5), tomb.OrderKey())

	// The projection keeps exactly the ordering information.
	require.Equal(t, Compare(n, tomb), n.OrderKey().CompareOrderKey(tomb.OrderKey()))
}

func TestCompareOrderKeyIgnoresPayload(t *testing.T) {
	require.Equal(t, 0, norm(5, "a").CompareOrderKey(norm(5, "z")))
	require.Equal(t, 1, ts[string](5).CompareOrderKey(norm(5, "z")))
	require.Equal(t, -1, norm(5, "z").CompareOrderKey(ts[string](5)))
	require.Equal(t, -1, norm(5, "z").CompareOrderKey(norm(6, "a")))
}

func TestMax(t *testing.T) {
	require.Equal(t, norm(2, "old"), Max(norm(2, "old"), norm(1, "new")))
	require.Equal(t, ts[string](2), Max(ts[string](2), norm(2, "data")))
	require.Equal(t, norm(3, "data"), Max(ts[string](2), norm(3, "data")))

	// Equal order keys: the second operand wins.
	require.Equal(t, norm(5, "b"), Max(norm(5, "a"), norm(5, "b")))
}

func TestMaxRef(t *testing.T) {
	a := norm(2, "a")
	b := norm(1, "b")
	require.Same(t, &a, MaxRef(&a, &b))

	tie1 := norm(5, "x")
	tie2 := norm(5, "y")
	require.Same(t, &tie2, MaxRef(&tie1, &tie2))
}

func TestMapPreservesOrderKey(t *testing.T) {
	f := func(d string) int { return len(d) }
	samples := []SeqMarked[string]{
		norm(0, ""),
		norm(1, "a"),
		norm(7, "abc"),
		ts[string](0),
		ts[string](9),
	}
	for _, sm := range samples {
		require.Equal(t, sm.OrderKey(), Map(sm, f).OrderKey(), "sample %s", sm)
	}
}

func TestMap(t *testing.T) {
	got := Map(norm(5, uint64(41)), func(d uint64) string { return strconv.FormatUint(d+1, 10) })
	require.Equal(t, norm(5, "42"), got)

	tomb := Map(ts[uint64](5), func(d uint64) string {
		t.Fatal("transform must never run on a tombstone")
		return ""
	})
	require.Equal(t, ts[string](5), tomb)
}

func TestTryMap(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("ok", func(t *testing.T) {
		got, err := TryMap(norm(5, "41"), strconv.Atoi)
		require.NoError(t, err)
		require.Equal(t, norm(5, 41), got)
	})

	t.Run("error passes through unwrapped", func(t *testing.T) {
		got, err := TryMap(norm(5, "x"), func(string) (int, error) { return 0, errBoom })
		require.Equal(t, errBoom, err)
		require.Equal(t, SeqMarked[int]{}, got, "no partially converted state")
	})

	t.Run("tombstone skips transform", func(t *testing.T) {
		got, err := TryMap(ts[string](5), func(string) (int, error) { return 0, errBoom })
		require.NoError(t, err)
		require.Equal(t, ts[int](5), got)
	})
}

func TestDataAccess(t *testing.T) {
	n := norm(5, "d")
	d, ok := n.Data()
	require.True(t, ok)
	require.Equal(t, "d", d)
	require.Equal(t, mo.Some("d"), n.DataOption())

	seq, m := n.Parts()
	require.Equal(t, uint64(5), seq)
	require.Equal(t, Normal("d"), m)

	tomb := ts[string](6)
	_, ok = tomb.Data()
	require.False(t, ok)
	require.Equal(t, mo.None[string](), tomb.DataOption())

	seq, m = tomb.Parts()
	require.Equal(t, uint64(6), seq)
	require.Equal(t, Tombstone[string](), m)
}

func TestSeqMarkedString(t *testing.T) {
	require.Equal(t, "{seq=5, (data)}", norm(5, "data").String())
	require.Equal(t, "{seq=6, TOMBSTONE}", ts[string](6).String())
}
