package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		timings  []time.Duration
		expected OpSummary
	}{
		{
			name:     "empty",
			expected: OpSummary{Op: OpInsert},
		},
		{
			name:     "one",
			timings:  []time.Duration{1500 * time.Nanosecond},
			expected: OpSummary{Op: OpInsert, Count: 1, MeanMicros: 1.5, MaxMicros: 1.5},
		},
		{
			name:     "many",
			timings:  []time.Duration{time.Microsecond, 4 * time.Microsecond, time.Microsecond},
			expected: OpSummary{Op: OpInsert, Count: 3, MeanMicros: 2, MaxMicros: 4},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Summarize(OpInsert, test.timings))
		})
	}
}

func TestNewRun(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	run := NewRun(10, 2, 3, "EUCLIDEAN", created)
	assert.Equal(t, 10, run.Points)
	assert.Equal(t, 2, run.Dims)
	assert.Equal(t, 3, run.Trials)
	assert.Equal(t, created, run.CreatedAt)
	assert.Empty(t, run.Ops)
	assert.NotEqual(t, NewRun(10, 2, 3, "EUCLIDEAN", created).ID, run.ID)
}
