package profiling

import (
	"testing"
	"time"
)

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["window.SwapBuffers"] = 3 * time.Millisecond
	frameTotals["window.PollEvents"] = time.Millisecond
	frameTotals["demo.Draw"] = 5 * time.Millisecond
	mu.Unlock()

	if got := SumWithPrefix("window."); got != 4*time.Millisecond {
		t.Errorf("Expected 4ms for window.*, got %v", got)
	}
	if got := SumWithPrefix("missing."); got != 0 {
		t.Errorf("Expected 0 for unknown prefix, got %v", got)
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["window.SwapBuffers"] = 4200 * time.Microsecond
	frameTotals["window.PollEvents"] = 2 * time.Millisecond
	frameTotals["demo.Draw"] = 300 * time.Microsecond
	mu.Unlock()

	got := TopN(2)
	want := "window.SwapBuffers:4.2ms, window.PollEvents:2ms"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if got := TopN(10); got != "window.SwapBuffers:4.2ms, window.PollEvents:2ms, demo.Draw:0.3ms" {
		t.Errorf("Expected all buckets when n exceeds count, got %q", got)
	}
}

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	stop := Track("test.Sleep")
	time.Sleep(time.Millisecond)
	stop()

	if d := Snapshot()["test.Sleep"]; d < time.Millisecond {
		t.Errorf("Expected at least 1ms tracked, got %v", d)
	}

	ResetFrame()
	if n := len(Snapshot()); n != 0 {
		t.Errorf("Expected empty snapshot after reset, got %d entries", n)
	}
}
