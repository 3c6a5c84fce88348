package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{" ALL ", FilterAll},
		{"completed", FilterCompleted},
		{"Done", FilterCompleted},
		{"pending", FilterPending},
		{"open", FilterPending},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFilter("someday")
	assert.Error(t, err)
}

func TestFilter_Presentation(t *testing.T) {
	assert.Equal(t, "", FilterAll.Status())
	assert.Equal(t, "completed", FilterCompleted.Status())
	assert.Equal(t, "all", FilterAll.String())
	assert.Equal(t, "Pending", FilterPending.Label())

	assert.Equal(t, "No tasks yet. Add one above!", FilterAll.EmptyMessage())
	assert.Equal(t, "No completed tasks yet", FilterCompleted.EmptyMessage())
	assert.Equal(t, "No pending tasks", FilterPending.EmptyMessage())
}

func TestFilter_NextCycles(t *testing.T) {
	f := FilterAll
	var seen []Filter
	for range Filters {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, []Filter{FilterCompleted, FilterPending, FilterAll}, seen)
}

func TestStatsAndFind(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Walk dog", Completed: true},
		{ID: 7, Title: "Read book"},
	}
	done, pending := Stats(tasks)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)

	got, ok := Find(tasks, 7)
	require.True(t, ok)
	assert.Equal(t, "Read book", got.Title)

	_, ok = Find(tasks, 3)
	assert.False(t, ok)
}
