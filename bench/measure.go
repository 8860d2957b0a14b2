package bench

import "time"

// Timing is one averaged measurement and the result the searcher returned.
type Timing struct {
	Average time.Duration
	Index   int
	Found   bool
}

// MeasureTime calls fn(text, pattern) repeats times and returns the average
// wall-clock duration per call together with the result of the last call.
// repeats below 1 is treated as 1.
func MeasureTime[T any](fn func(text, pattern []T) (int, bool), text, pattern []T, repeats int) Timing {
	if repeats < 1 {
		repeats = 1
	}

	var idx int
	var found bool

	start := time.Now()
	for i := 0; i < repeats; i++ {
		idx, found = fn(text, pattern)
	}
	elapsed := time.Since(start)

	return Timing{
		Average: elapsed / time.Duration(repeats),
		Index:   idx,
		Found:   found,
	}
}
