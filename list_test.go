package slist_test

import (
	"slices"
	"testing"

	"deedles.dev/slist"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var ls slist.List[string]
	require.True(t, ls.IsEmpty())
	require.Zero(t, ls.Len())
	require.Nil(t, ls.Front())
	require.Empty(t, ls.ToSlice())
	require.Equal(t, "[]", ls.String())
}

func TestInsertAtBackMany(t *testing.T) {
	tests := [][]int{
		nil,
		{1},
		{1, 1, 1},
		{-5, -10, 4, -3, 6, 1, -7, -2},
	}
	for _, vals := range tests {
		var ls slist.List[int]
		got := ls.InsertAtBackMany(vals...).ToSlice()
		if diff := cmp.Diff(vals, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("InsertAtBackMany(%v) mismatch (-want +got):\n%s", vals, diff)
		}
		require.Equal(t, len(vals), ls.Len())
	}
}

func TestInsertAtBackSeq(t *testing.T) {
	ls := slist.New(1, 2)
	ls.InsertAtBackSeq(slices.Values([]int{3, 4}))
	require.Equal(t, []int{1, 2, 3, 4}, ls.ToSlice())
}

func TestInsertAtBackSeqSelf(t *testing.T) {
	ls := slist.New(1, 2)
	ls.InsertAtBackSeq(ls.All())
	require.Equal(t, []int{1, 2, 1, 2}, ls.ToSlice())
}

func TestInsertAtFront(t *testing.T) {
	ls := slist.New(2, 3)
	ls.InsertAtFront(1).InsertAtFront(0)
	require.Equal(t, []int{0, 1, 2, 3}, ls.ToSlice())

	var empty slist.List[int]
	empty.InsertAtFront(7)
	require.Equal(t, []int{7}, empty.ToSlice())
}

func TestInsertAtBack(t *testing.T) {
	var ls slist.List[int]
	ls.InsertAtBack(1).InsertAtBack(2)
	require.Equal(t, []int{1, 2}, ls.ToSlice())
}

func TestInsertAtBackFrom(t *testing.T) {
	var empty slist.List[int]
	err := empty.InsertAtBackFrom(1, nil)
	require.ErrorIs(t, err, slist.ErrEmpty)
	require.True(t, empty.IsEmpty())

	ls := slist.New(1, 2)
	require.NoError(t, ls.InsertAtBackFrom(3, nil))
	require.Equal(t, []int{1, 2, 3}, ls.ToSlice())

	require.NoError(t, ls.InsertAtBackFrom(4, ls.Front().Next()))
	require.Equal(t, []int{1, 2, 3, 4}, ls.ToSlice())

	other := slist.New(9)
	err = ls.InsertAtBackFrom(5, other.Front())
	require.ErrorIs(t, err, slist.ErrForeignNode)
	require.Equal(t, []int{1, 2, 3, 4}, ls.ToSlice())
	require.Equal(t, []int{9}, other.ToSlice())
}

func TestRemoveHead(t *testing.T) {
	var empty slist.List[int]
	_, ok := empty.RemoveHead()
	require.False(t, ok)
	require.True(t, empty.IsEmpty())

	for _, vals := range [][]int{{1}, {1, 2, 3}} {
		ls := slist.New(vals...)
		ls.InsertAtFront(42)
		v, ok := ls.RemoveHead()
		require.True(t, ok)
		require.Equal(t, 42, v)
		require.Equal(t, vals, ls.ToSlice())
	}
}

func TestRemoveBack(t *testing.T) {
	var empty slist.List[int]
	_, ok := empty.RemoveBack()
	require.False(t, ok)

	for _, vals := range [][]int{nil, {1}, {1, 2, 3}} {
		ls := slist.New(vals...)
		ls.InsertAtBack(42)
		v, ok := ls.RemoveBack()
		require.True(t, ok)
		require.Equal(t, 42, v)
		if diff := cmp.Diff(vals, ls.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("RemoveBack() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRemovedNodeIsDetached(t *testing.T) {
	ls := slist.New(1, 2, 3)
	n := ls.Front()
	ls.RemoveHead()
	require.Nil(t, n.Next())

	n = ls.Front()
	require.True(t, ls.RemoveVal(2))
	require.Nil(t, n.Next())
	require.Equal(t, []int{3}, ls.ToSlice())
}

func TestContains(t *testing.T) {
	var ls slist.List[string]
	require.False(t, ls.Contains("a"))

	ls.InsertAtBack("a")
	require.True(t, ls.Contains("a"))
	ls.InsertAtFront("b")
	require.True(t, ls.Contains("b"))
	require.False(t, ls.Contains("c"))
}

func TestContainsFrom(t *testing.T) {
	ls := slist.New(1, 2, 3)
	require.True(t, ls.ContainsFrom(1, nil))

	second := ls.Front().Next()
	require.False(t, ls.ContainsFrom(1, second))
	require.True(t, ls.ContainsFrom(2, second))
	require.True(t, ls.ContainsFrom(3, second))

	other := slist.New(99)
	require.False(t, ls.ContainsFrom(99, other.Front()))
}

func TestSecondToLast(t *testing.T) {
	tests := []struct {
		vals []string
		want string
		ok   bool
	}{
		{vals: nil},
		{vals: []string{"a"}},
		{vals: []string{"a", "b"}, want: "a", ok: true},
		{vals: []string{"a", "b", "c"}, want: "b", ok: true},
	}
	for _, tt := range tests {
		got, ok := slist.New(tt.vals...).SecondToLast()
		require.Equal(t, tt.ok, ok, "%v", tt.vals)
		require.Equal(t, tt.want, got, "%v", tt.vals)
	}
}

func TestRemoveVal(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		rm   int
		want []int
		ok   bool
	}{
		{name: "Empty", rm: 1},
		{name: "Head", vals: []int{1, 2, 3}, rm: 1, want: []int{2, 3}, ok: true},
		{name: "Middle", vals: []int{1, 2, 3}, rm: 2, want: []int{1, 3}, ok: true},
		{name: "Tail", vals: []int{1, 2, 3}, rm: 3, want: []int{1, 2}, ok: true},
		{name: "Only", vals: []int{1}, rm: 1, ok: true},
		{name: "Absent", vals: []int{1, 2, 3}, rm: 4, want: []int{1, 2, 3}},
		{name: "FirstOfMany", vals: []int{2, 1, 2}, rm: 2, want: []int{1, 2}, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := slist.New(tt.vals...)
			require.Equal(t, tt.ok, ls.RemoveVal(tt.rm))
			if diff := cmp.Diff(tt.want, ls.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("RemoveVal(%v) mismatch (-want +got):\n%s", tt.rm, diff)
			}
		})
	}
}

func TestPrepend(t *testing.T) {
	tests := []struct {
		name   string
		vals   []int
		v      int
		target int
		want   []int
		ok     bool
	}{
		{name: "Empty", v: 0, target: 1},
		{name: "Head", vals: []int{1, 2}, v: 0, target: 1, want: []int{0, 1, 2}, ok: true},
		{name: "Tail", vals: []int{1, 2}, v: 0, target: 2, want: []int{1, 0, 2}, ok: true},
		{name: "Absent", vals: []int{1, 2}, v: 0, target: 3, want: []int{1, 2}},
		{name: "FirstOfMany", vals: []int{1, 2, 2}, v: 0, target: 2, want: []int{1, 0, 2, 2}, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := slist.New(tt.vals...)
			require.Equal(t, tt.ok, ls.Prepend(tt.v, tt.target))
			if diff := cmp.Diff(tt.want, ls.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Prepend(%v, %v) mismatch (-want +got):\n%s", tt.v, tt.target, diff)
			}
			if tt.ok {
				require.True(t, ls.Contains(tt.v))
			}
		})
	}
}

func TestRemoveAndPrependTrace(t *testing.T) {
	ls := slist.New(-5, -10, 4, -3, 6, 1, -7, -2)

	require.True(t, ls.RemoveVal(-10))
	require.Equal(t, []int{-5, 4, -3, 6, 1, -7, -2}, ls.ToSlice())

	require.False(t, ls.RemoveVal(10))
	require.Equal(t, []int{-5, 4, -3, 6, 1, -7, -2}, ls.ToSlice())

	require.True(t, ls.Prepend(-10, 4))
	require.Equal(t, []int{-5, -10, 4, -3, 6, 1, -7, -2}, ls.ToSlice())

	require.False(t, ls.Prepend(0, 555))
	require.Equal(t, []int{-5, -10, 4, -3, 6, 1, -7, -2}, ls.ToSlice())
}

func TestAllStopsEarly(t *testing.T) {
	ls := slist.New(1, 2, 3, 4)
	var got []int
	for v := range ls.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestClone(t *testing.T) {
	ls := slist.New(1, 2, 3)
	c := ls.Clone()
	c.InsertAtBack(4)
	ls.RemoveHead()

	require.Equal(t, []int{2, 3}, ls.ToSlice())
	require.Equal(t, []int{1, 2, 3, 4}, c.ToSlice())
}

func TestClear(t *testing.T) {
	ls := slist.New(1, 2, 3)
	ls.Clear()
	require.True(t, ls.IsEmpty())
	ls.InsertAtBack(4)
	require.Equal(t, []int{4}, ls.ToSlice())
}

func BenchmarkInsertAtFront(b *testing.B) {
	var ls slist.List[int]
	for i := range b.N {
		ls.InsertAtFront(i)
	}
}
