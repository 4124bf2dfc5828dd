package cmd

import (
	"bytes"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer that can be written by the app goroutine
// while the test polls it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setGraceDelay(t *testing.T, d time.Duration) {
	t.Helper()
	old := graceDelay
	graceDelay = d
	t.Cleanup(func() { graceDelay = old })
}

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	out := &syncBuffer{}
	err := execute(append([]string{"delayrun"}, args...), BuildArgs{Version: "1.0.0", BuildType: "test"}, nil, out, &syncBuffer{})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func waitForOutput(t *testing.T, out *syncBuffer, cond func(string) bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond(out.String()) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out, output so far:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
