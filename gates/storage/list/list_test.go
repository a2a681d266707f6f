package list

import (
	"bytes"
	"chainwalk/gates/storage"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(l *List) []int64 {
	var out []int64
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

func backwardValues(l *List) []int64 {
	var out []int64
	for _, v := range l.Backward() {
		out = append(out, v)
	}
	return out
}

func TestListAddLinksBothWays(t *testing.T) {
	l := NewList(1)
	for _, v := range []int64{37, 38, 39} {
		_, err := l.Add(v)
		require.NoError(t, err)
	}

	require.Equal(t, int64(3), l.Len())
	assert.Nil(t, l.firstNode.prevNode)
	assert.Nil(t, l.lastNode.nextNode)
	for n := l.firstNode; n != nil; n = n.nextNode {
		if n.nextNode != nil {
			assert.Same(t, n, n.nextNode.prevNode)
		}
		if n.prevNode != nil {
			assert.Same(t, n, n.prevNode.nextNode)
		}
	}

	if diff := cmp.Diff([]int64{37, 38, 39}, values(l)); diff != "" {
		t.Errorf("forward mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{39, 38, 37}, backwardValues(l)); diff != "" {
		t.Errorf("backward mismatch (-want +got):\n%s", diff)
	}
}

func TestListIDs(t *testing.T) {
	l := NewList(10)
	first, err := l.Add(1)
	require.NoError(t, err)
	second, err := l.Add(2)
	require.NoError(t, err)

	assert.Equal(t, int64(10), first)
	assert.Equal(t, int64(11), second)

	head, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, first, head)
	tail, ok := l.Tail()
	require.True(t, ok)
	assert.Equal(t, second, tail)

	next, ok := l.Next(first)
	require.True(t, ok)
	assert.Equal(t, second, next)
	_, ok = l.Next(second)
	assert.False(t, ok)

	prev, ok := l.Prev(second)
	require.True(t, ok)
	assert.Equal(t, first, prev)
	_, ok = l.Prev(first)
	assert.False(t, ok)

	_, ok = l.Next(999)
	assert.False(t, ok)
}

func TestListSingleNodeIsHeadAndTail(t *testing.T) {
	l := NewList(1)
	id, err := l.Add(5)
	require.NoError(t, err)

	head, _ := l.Head()
	tail, _ := l.Tail()
	assert.Equal(t, id, head)
	assert.Equal(t, id, tail)
	require.NoError(t, storage.Verify(l))
}

func TestListInsertAfter(t *testing.T) {
	l := NewList(1)
	a, _ := l.Add(1)
	c, _ := l.Add(3)

	_, err := l.InsertAfter(a, 2)
	require.NoError(t, err)
	_, err = l.InsertAfter(c, 4)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3, 4}, values(l))
	assert.Equal(t, []int64{4, 3, 2, 1}, backwardValues(l))
	assert.Equal(t, int64(4), l.Len())
	require.NoError(t, storage.Verify(l))

	_, err = l.InsertAfter(42, 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListRemoveByID(t *testing.T) {
	tests := []struct {
		name   string
		remove []int64
		want   []int64
	}{
		{name: "head", remove: []int64{1}, want: []int64{38, 39}},
		{name: "middle", remove: []int64{2}, want: []int64{37, 39}},
		{name: "tail", remove: []int64{3}, want: []int64{37, 38}},
		{name: "all", remove: []int64{2, 1, 3}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(1)
			for _, v := range []int64{37, 38, 39} {
				_, _ = l.Add(v)
			}
			for _, id := range tt.remove {
				require.NoError(t, l.RemoveByID(id))
				require.NoError(t, storage.Verify(l))
			}
			assert.Equal(t, tt.want, values(l))
			assert.Equal(t, int64(len(tt.want)), l.Len())
		})
	}
}

func TestListRemoveMissing(t *testing.T) {
	l := NewList(1)
	assert.ErrorIs(t, l.RemoveByID(1), storage.ErrNotFound)

	id, _ := l.Add(1)
	require.NoError(t, l.RemoveByID(id))
	assert.ErrorIs(t, l.RemoveByID(id), storage.ErrNotFound)
	assert.ErrorIs(t, l.RemoveByID(-5), storage.ErrNotFound)
}

func TestListClear(t *testing.T) {
	l := NewList(1)
	_, _ = l.Add(1)
	_, _ = l.Add(2)
	l.Clear()

	assert.Equal(t, int64(0), l.Len())
	_, ok := l.Head()
	assert.False(t, ok)
	_, ok = l.GetByID(1)
	assert.False(t, ok)

	id, err := l.Add(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestListIteratorStopsEarly(t *testing.T) {
	l := NewList(1)
	for _, v := range []int64{1, 2, 3} {
		_, _ = l.Add(v)
	}

	var seen []int64
	for _, v := range l.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestListPrint(t *testing.T) {
	l := NewList(1)
	var buf bytes.Buffer
	l.Print(&buf)
	assert.Equal(t, "[]\n", buf.String())

	_, _ = l.Add(37)
	_, _ = l.Add(38)
	buf.Reset()
	l.Print(&buf)
	assert.Equal(t, "[{1: 37}, {2: 38}]\n", buf.String())
}

func TestVerifyDetectsCorruption(t *testing.T) {
	l := NewList(1)
	for _, v := range []int64{1, 2, 3} {
		_, _ = l.Add(v)
	}

	// разрываем обратную ссылку среднего узла
	l.firstNode.nextNode.prevNode = nil
	assert.ErrorIs(t, storage.Verify(l), storage.ErrBrokenLink)
}

func TestVerifyDetectsCycle(t *testing.T) {
	l := NewList(1)
	for _, v := range []int64{1, 2, 3} {
		_, _ = l.Add(v)
	}

	l.lastNode.nextNode = l.firstNode
	assert.ErrorIs(t, storage.Verify(l), storage.ErrBrokenLink)
}
