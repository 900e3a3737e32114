package monitoring

import (
	"fmt"
	"sync"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	Logf("[LabelMatcher] no scored tracks in event with %d hits", 4)

	if len(got) != 1 {
		t.Fatalf("expected 1 logged line, got %d", len(got))
	}
	if got[0] != "[LabelMatcher] no scored tracks in event with 4 hits" {
		t.Errorf("unexpected log line %q", got[0])
	}

	// nil installs a no-op and must not reach the previous logger
	SetLogger(nil)
	Logf("dropped")
	if len(got) != 1 {
		t.Errorf("no-op logger forwarded a message: %v", got)
	}
}

func TestLogger_RestoresPrevious(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	var n int
	counting := func(string, ...interface{}) { n++ }
	SetLogger(counting)
	saved := Logger()

	SetLogger(nil)
	Logf("muted")
	SetLogger(saved)
	Logf("counted")

	if n != 1 {
		t.Errorf("expected 1 call after restore, got %d", n)
	}
}

func TestSetLogger_ConcurrentWithLogf(t *testing.T) {
	original := Logger()
	defer SetLogger(original)
	SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Logf("event %d", j)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetLogger(nil)
			}
		}()
	}
	wg.Wait()
}

func TestLogf_Default(t *testing.T) {
	if Logger() == nil {
		t.Fatal("logger should not be nil by default")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logf panicked: %v", r)
		}
	}()
	Logf("test message: %s", "value")
}
