package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusySet_ConflictsWith(t *testing.T) {
	busy := NewBusySet(
		mustInterval(t, 10, 0, 11, 0),
		mustInterval(t, 14, 0, 15, 0),
	)

	assert.True(t, busy.ConflictsWith(mustInterval(t, 10, 30, 11, 30)))
	assert.True(t, busy.ConflictsWith(mustInterval(t, 13, 30, 14, 30)))
	assert.False(t, busy.ConflictsWith(mustInterval(t, 11, 0, 12, 0)))
	assert.False(t, busy.ConflictsWith(mustInterval(t, 9, 0, 10, 0)))
}

func TestBusySet_Add_KeepsOrder(t *testing.T) {
	busy := BusySet{}
	busy.Add(mustInterval(t, 14, 0, 15, 0))
	busy.Add(mustInterval(t, 9, 0, 10, 0))
	busy.Add(mustInterval(t, 11, 0, 12, 0))

	intervals := busy.Intervals()
	require.Len(t, intervals, 3)
	assert.Equal(t, 9, intervals[0].Start.Hour())
	assert.Equal(t, 11, intervals[1].Start.Hour())
	assert.Equal(t, 14, intervals[2].Start.Hour())
}

func TestBusySet_Merge(t *testing.T) {
	t.Run("overlapping intervals coalesce", func(t *testing.T) {
		busy := NewBusySet(
			mustInterval(t, 10, 0, 11, 0),
			mustInterval(t, 10, 30, 12, 0),
		)

		merged := busy.Merge().Intervals()
		require.Len(t, merged, 1)
		assert.Equal(t, mustInterval(t, 10, 0, 12, 0), merged[0])
	})

	t.Run("adjacent intervals coalesce", func(t *testing.T) {
		busy := NewBusySet(
			mustInterval(t, 10, 0, 11, 0),
			mustInterval(t, 11, 0, 12, 0),
		)

		merged := busy.Merge().Intervals()
		require.Len(t, merged, 1)
		assert.Equal(t, mustInterval(t, 10, 0, 12, 0), merged[0])
	})

	t.Run("contained interval is absorbed", func(t *testing.T) {
		busy := NewBusySet(
			mustInterval(t, 9, 0, 13, 0),
			mustInterval(t, 10, 0, 11, 0),
		)

		merged := busy.Merge().Intervals()
		require.Len(t, merged, 1)
		assert.Equal(t, mustInterval(t, 9, 0, 13, 0), merged[0])
	})

	t.Run("disjoint intervals stay apart", func(t *testing.T) {
		busy := NewBusySet(
			mustInterval(t, 9, 0, 10, 0),
			mustInterval(t, 14, 0, 15, 0),
		)

		assert.Len(t, busy.Merge().Intervals(), 2)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.True(t, BusySet{}.Merge().IsEmpty())
	})
}

func TestBusySet_Intervals_ReturnsCopy(t *testing.T) {
	busy := NewBusySet(mustInterval(t, 10, 0, 11, 0))

	out := busy.Intervals()
	out[0] = mustInterval(t, 9, 0, 9, 30)

	assert.Equal(t, mustInterval(t, 10, 0, 11, 0), busy.Intervals()[0])
}
