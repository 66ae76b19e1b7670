package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu   sync.Mutex
	got  []string
	done chan struct{}
}

func newSink() *sink {
	return &sink{done: make(chan struct{}, 16)}
}

func (s *sink) add(v string) {
	s.mu.Lock()
	s.got = append(s.got, v)
	s.mu.Unlock()
	s.done <- struct{}{}
}

func (s *sink) values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.got...)
}

func TestTrigger_OnlyLastValueDelivered(t *testing.T) {
	s := newSink()
	d := New(20*time.Millisecond, s.add)

	d.Trigger("e")
	d.Trigger("ev")
	d.Trigger("eve")

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"eve"}, s.values())
}

func TestStop_CancelsPending(t *testing.T) {
	s := newSink()
	d := New(20*time.Millisecond, s.add)

	d.Trigger("eve")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, s.values())
}

func TestFlush_RunsImmediately(t *testing.T) {
	s := newSink()
	d := New(time.Hour, s.add)

	d.Trigger("ev")
	d.Flush("eve")

	require.Equal(t, []string{"eve"}, s.values())
}
