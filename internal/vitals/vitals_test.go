package vitals

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func TestRecorder_ReportsFirstFrameOnce(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := make(chan Metrics, 2)
	var calls atomic.Int32

	r := NewRecorder(start, func(m Metrics) {
		calls.Add(1)
		got <- m
	})
	r.now = func() time.Time { return start.Add(250 * time.Millisecond) }

	r.Frame(3 * time.Millisecond)
	r.Frame(9 * time.Millisecond)
	r.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("report calls=%d, want 1", n)
	}
	m := <-got
	if m.StartupDuration != 250*time.Millisecond {
		t.Fatalf("StartupDuration=%v, want 250ms", m.StartupDuration)
	}
	if m.FirstRender != 3*time.Millisecond {
		t.Fatalf("FirstRender=%v, want 3ms", m.FirstRender)
	}
}

func TestRecorder_NilReportIsNoop(t *testing.T) {
	r := NewRecorder(time.Now(), nil)
	r.Frame(time.Millisecond)
	r.Wait()

	var nilRec *Recorder
	nilRec.Frame(time.Millisecond)
	nilRec.Wait()
}

func TestRecorder_DoesNotBlockOnReport(t *testing.T) {
	release := make(chan struct{})
	r := NewRecorder(time.Now(), func(Metrics) { <-release })

	done := make(chan struct{})
	go func() {
		r.Frame(time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Frame blocked on the reporter")
	}
	close(release)
	r.Wait()
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	LogReporter(logger)(Metrics{StartupDuration: 1500 * time.Millisecond, FirstRender: 42 * time.Microsecond})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "startup vitals" {
		t.Fatalf("msg=%v, want %q", entry["msg"], "startup vitals")
	}
	if entry["startup_ms"] != float64(1500) {
		t.Fatalf("startup_ms=%v, want 1500", entry["startup_ms"])
	}
	if entry["first_render_us"] != float64(42) {
		t.Fatalf("first_render_us=%v, want 42", entry["first_render_us"])
	}
}
