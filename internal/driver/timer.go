package driver

import "time"

// wallclockTimer records elapsed real time, including time spent blocked —
// the Go analogue of identifying_codes.py's WallclockTimer (time.perf_counter
// there, time.Since(time.Now()) here).
type wallclockTimer struct {
	start time.Time
}

func newWallclockTimer() *wallclockTimer { return &wallclockTimer{start: time.Now()} }

func (t *wallclockTimer) Elapsed() time.Duration { return time.Since(t.start) }

// processTimer records CPU time (user+sys), the Go analogue of
// identifying_codes.py's ProcessTimer (time.process_time there). Actual
// measurement is platform-specific; see timer_unix.go / timer_other.go.
type processTimer struct {
	start time.Duration
}

func newProcessTimer() *processTimer { return &processTimer{start: cpuTimeNow()} }

func (t *processTimer) Elapsed() time.Duration { return cpuTimeNow() - t.start }
