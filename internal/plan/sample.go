package plan

import "fmt"

// SampleTimes returns count evenly spaced timestamps strictly inside
// (0, duration). The timeline is divided into count+1 equal intervals and
// the interior boundaries are taken, so the first and last frames (often
// black or frozen) are never sampled.
func SampleTimes(duration float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: sample count %d must be at least 1", ErrInvalidParam, count)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %.3f must be positive", ErrInvalidParam, duration)
	}

	times := make([]float64, count)
	for i := 1; i <= count; i++ {
		times[i-1] = duration * float64(i) / float64(count+1)
	}
	return times, nil
}
