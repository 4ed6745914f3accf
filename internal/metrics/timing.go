package metrics

import "time"

// TickTiming aggregates render-loop tick durations.
type TickTiming struct {
	total time.Duration
	max   time.Duration
	n     int
}

func NewTickTiming() *TickTiming { return &TickTiming{} }

func (t *TickTiming) Name() string { return "tick_ms" }

func (t *TickTiming) Add(d time.Duration) {
	t.total += d
	if d > t.max {
		t.max = d
	}
	t.n++
}

// Value returns the mean tick duration in milliseconds.
func (t *TickTiming) Value() float64 {
	if t.n == 0 {
		return 0
	}
	return float64(t.total.Milliseconds()) / float64(t.n)
}

// Max returns the slowest observed tick.
func (t *TickTiming) Max() time.Duration { return t.max }

func (t *TickTiming) Reset() { *t = TickTiming{} }
