package model

// Series is a numeric series index-aligned 1:1 with the input bars.
// Entries inside an indicator's warm-up window are undefined and can only
// be observed through At; nothing downstream may assume a value exists.
type Series struct {
	vals    []float64
	defined []bool
}

// NewSeries creates a Series of length n with every entry undefined.
func NewSeries(n int) Series {
	return Series{
		vals:    make([]float64, n),
		defined: make([]bool, n),
	}
}

// Len returns the series length (always equal to the input bar count).
func (s Series) Len() int { return len(s.vals) }

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s.vals) || !s.defined[i] {
		return 0, false
	}
	return s.vals[i], true
}

// Last returns the final entry of the series and whether it is defined.
func (s Series) Last() (float64, bool) {
	return s.At(len(s.vals) - 1)
}

// Set marks index i defined with the given value.
func (s Series) Set(i int, v float64) {
	s.vals[i] = v
	s.defined[i] = true
}

// FirstDefined returns the index of the first defined entry, or -1.
func (s Series) FirstDefined() int {
	for i, ok := range s.defined {
		if ok {
			return i
		}
	}
	return -1
}

// DefinedCount returns how many entries are defined.
func (s Series) DefinedCount() int {
	n := 0
	for _, ok := range s.defined {
		if ok {
			n++
		}
	}
	return n
}
