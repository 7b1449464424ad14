package torus

import (
	"iter"
	"math"
)

const twoPi = 2 * math.Pi

// Sampler yields (sin, cos) of the angles 0, step, 2*step, ... below 2π.
// Every call to Samples starts the sequence over.
type Sampler interface {
	Samples() iter.Seq2[float64, float64]
	Step() float64
}

// NewSampler picks the sampler used by mode.
func NewSampler(mode Mode, step float64) Sampler {
	if mode == Optimized {
		return NewTableSampler(step)
	}
	return NewLazySampler(step)
}

// LazySampler evaluates sin and cos on demand each time it is walked.
type LazySampler struct {
	step float64
}

func NewLazySampler(step float64) *LazySampler {
	return &LazySampler{step: step}
}

func (s *LazySampler) Step() float64 { return s.step }

func (s *LazySampler) Samples() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		// The angle is accumulated, not multiplied, so both samplers hit
		// the same float64 values.
		for angle := 0.0; angle < twoPi; angle += s.step {
			if !yield(math.Sin(angle), math.Cos(angle)) {
				return
			}
		}
	}
}

// TableSampler holds every sample of a step, computed once.
type TableSampler struct {
	sin  []float64
	cos  []float64
	step float64
}

func NewTableSampler(step float64) *TableSampler {
	t := &TableSampler{step: step}
	if !(step > 0) {
		return t
	}

	n := int(math.Ceil(twoPi / step))
	t.sin = make([]float64, 0, n)
	t.cos = make([]float64, 0, n)
	for angle := 0.0; angle < twoPi; angle += step {
		t.sin = append(t.sin, math.Sin(angle))
		t.cos = append(t.cos, math.Cos(angle))
	}
	return t
}

func (t *TableSampler) Step() float64 { return t.step }

// Len returns the number of precomputed samples.
func (t *TableSampler) Len() int { return len(t.sin) }

func (t *TableSampler) Samples() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range t.sin {
			if !yield(t.sin[i], t.cos[i]) {
				return
			}
		}
	}
}

// Count walks s and returns how many samples it yields.
func Count(s Sampler) int {
	if t, ok := s.(*TableSampler); ok {
		return t.Len()
	}
	n := 0
	for range s.Samples() {
		n++
	}
	return n
}
