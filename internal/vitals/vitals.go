// Package vitals reports startup performance once per process. Reporting is
// fire-and-forget: the widget never waits on it and ignores its outcome.
package vitals

import (
	"log/slog"
	"sync"
	"time"
)

// Metrics describes how quickly the widget became usable.
type Metrics struct {
	// StartupDuration runs from process start to the end of the first frame.
	StartupDuration time.Duration
	// FirstRender is the time spent producing the first frame.
	FirstRender time.Duration
}

// ReportFunc receives Metrics. It runs on its own goroutine.
type ReportFunc func(Metrics)

// Recorder turns the first frame into a single report.
type Recorder struct {
	start  time.Time
	report ReportFunc
	now    func() time.Time

	once sync.Once
	wg   sync.WaitGroup
}

// NewRecorder measures startup from start. A nil report disables reporting.
func NewRecorder(start time.Time, report ReportFunc) *Recorder {
	return &Recorder{start: start, report: report, now: time.Now}
}

// Frame records that a frame took d to render. Only the first call reports.
func (r *Recorder) Frame(d time.Duration) {
	if r == nil || r.report == nil {
		return
	}
	r.once.Do(func() {
		m := Metrics{StartupDuration: r.now().Sub(r.start), FirstRender: d}
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.report(m)
		}()
	})
}

// Wait blocks until a started report returns.
func (r *Recorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}

// LogReporter reports metrics as a single INFO record.
func LogReporter(logger *slog.Logger) ReportFunc {
	return func(m Metrics) {
		logger.Info("startup vitals",
			"startup_ms", m.StartupDuration.Milliseconds(),
			"first_render_us", m.FirstRender.Microseconds(),
		)
	}
}
