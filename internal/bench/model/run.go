package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OpInsert   = "insert"
	OpContains = "contains"
	OpNearest  = "nearest"
	OpErase    = "erase"
)

// Ops lists the timed operations in the order a trial performs them.
var Ops = []string{OpInsert, OpContains, OpNearest, OpErase}

func NewRun(points, dims, trials int, distance string, createdAt time.Time) Run {
	return Run{
		ID:        uuid.New(),
		Points:    points,
		Dims:      dims,
		Trials:    trials,
		Distance:  distance,
		CreatedAt: createdAt,
	}
}

// Run summarizes one benchmark invocation over all of its trials.
type Run struct {
	ID        uuid.UUID   `json:"id"`
	Points    int         `json:"points"`
	Dims      int         `json:"dims"`
	Trials    int         `json:"trials"`
	Distance  string      `json:"distance"`
	Ops       []OpSummary `json:"ops"`
	CreatedAt time.Time   `json:"createdAt"`
}

type OpSummary struct {
	Op         string  `json:"op"`
	Count      int     `json:"count"`
	MeanMicros float64 `json:"meanMicros"`
	MaxMicros  float64 `json:"maxMicros"`
}

// Summarize folds per operation timings into a summary.
func Summarize(op string, timings []time.Duration) OpSummary {
	s := OpSummary{Op: op, Count: len(timings)}
	if len(timings) == 0 {
		return s
	}
	var total time.Duration
	for _, d := range timings {
		total += d
		if m := Micros(d); m > s.MaxMicros {
			s.MaxMicros = m
		}
	}
	s.MeanMicros = Micros(total) / float64(len(timings))
	return s
}

func Micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}
