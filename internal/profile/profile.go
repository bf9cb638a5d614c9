// Package profile measures how long a step takes and how much memory it
// leaves behind.
package profile

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Report holds the measurements of one step
type Report struct {
	Duration   time.Duration
	HeapInUse  uint64 // heap bytes in use after the step
	Allocated  uint64 // bytes allocated while the step ran
	NumObjects uint64 // live heap objects after the step
}

// Measure runs fn and records its wall-clock time and memory footprint.
// The error from fn is returned as is, alongside the report.
func Measure(fn func() error) (Report, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	err := fn()
	duration := time.Since(start)

	runtime.ReadMemStats(&after)

	return Report{
		Duration:   duration,
		HeapInUse:  after.HeapInuse,
		Allocated:  after.TotalAlloc - before.TotalAlloc,
		NumObjects: after.HeapObjects,
	}, err
}

// String renders the report for humans
func (r Report) String() string {
	return fmt.Sprintf("took %s, heap in use %s, allocated %s",
		r.Duration, humanize.IBytes(r.HeapInUse), humanize.IBytes(r.Allocated))
}
