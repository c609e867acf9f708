package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func silentBuffer(samples int) *beep.Buffer {
	buf := beep.NewBuffer(testFormat)
	buf.Append(&fakeStream{n: samples})
	return buf
}

// readyPool builds a pool with count pre-loaded voices, bypassing async load
func readyPool(count int) *Pool {
	p := &Pool{sink: NullSink{}, volume: 0.5, source: "test.wav"}
	for i := 0; i < count; i++ {
		p.adoptBuffer(silentBuffer(64))
	}
	return p
}

func TestPlayRoundRobin(t *testing.T) {
	for _, size := range []int{1, 2, 5} {
		p := readyPool(size)

		// p plays visit each voice exactly once
		for i := 0; i < size; i++ {
			p.Play()
		}
		for i, v := range p.voices {
			if v.starts != 1 {
				t.Errorf("size %d: voice %d started %d times, want 1", size, i, v.starts)
			}
		}

		// Call p+1 revisits the voice of call 1
		p.Play()
		if p.voices[0].starts != 2 {
			t.Errorf("size %d: wraparound did not revisit first voice", size)
		}
	}
}

func TestPlayZeroVoices(t *testing.T) {
	p := readyPool(0)

	// Cold pool: silent drop, no panic, no side effect beyond the counter
	p.Play()
	p.Play()

	played, dropped := p.Stats()
	if played != 0 || dropped != 2 {
		t.Errorf("stats = (%d, %d), want (0, 2)", played, dropped)
	}
}

func TestPlayRestartsBusyVoice(t *testing.T) {
	p := readyPool(1)

	p.Play()
	v := p.voices[0]
	if !v.playing() {
		t.Fatal("voice should be playing after trigger")
	}

	// Drain part of the voice, as the mix goroutine would
	scratch := make([][2]float64, 10)
	v.Stream(scratch)
	if v.streamer.Position() != 10 {
		t.Fatalf("position = %d, want 10", v.streamer.Position())
	}

	// Same slot recurs while still playing: stopped and restarted from zero
	p.Play()
	if v.starts != 2 {
		t.Errorf("starts = %d, want 2", v.starts)
	}
	if v.streamer.Position() != 0 {
		t.Errorf("restart position = %d, want 0", v.streamer.Position())
	}
	if !v.playing() {
		t.Error("voice should be playing after restart")
	}
}

func TestVoiceDrainsToIdle(t *testing.T) {
	p := readyPool(1)
	p.Play()
	v := p.voices[0]

	// Pull past the end of the 64-sample buffer
	scratch := make([][2]float64, 100)
	n, ok := v.Stream(scratch)
	if n != len(scratch) || !ok {
		t.Fatalf("voice must never drain from the mixer's view, got (%d, %v)", n, ok)
	}
	if v.playing() {
		t.Error("voice should report idle after its buffer is exhausted")
	}

	// Idle voice streams silence and stays alive
	n, ok = v.Stream(scratch)
	if n != len(scratch) || !ok {
		t.Errorf("idle voice stopped streaming, got (%d, %v)", n, ok)
	}
}

func TestCursorWrapsAgainstGrowingCount(t *testing.T) {
	p := readyPool(2)

	// Cursor lands back on 0 after two plays
	p.Play()
	p.Play()

	// A late async load arrives mid-sequence
	p.adoptBuffer(silentBuffer(64))

	// Wraps against the current ready count without panic
	p.Play()
	p.Play()
	p.Play()

	played, _ := p.Stats()
	if played != 5 {
		t.Errorf("played = %d, want 5", played)
	}
	if p.voices[2].starts != 1 {
		t.Errorf("late voice started %d times, want 1", p.voices[2].starts)
	}
}

func TestPoolAsyncLoad(t *testing.T) {
	c := newTestCache(nil)
	p := NewPool(c, NullSink{}, "chime.wav", 0.5, 3)

	deadline := time.Now().Add(2 * time.Second)
	for p.Ready() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d voices ready", p.Ready())
		}
		time.Sleep(time.Millisecond)
	}

	if p.Source() != "chime.wav" {
		t.Errorf("source = %q, want chime.wav", p.Source())
	}

	p.Play()
	played, dropped := p.Stats()
	if played != 1 || dropped != 0 {
		t.Errorf("stats = (%d, %d), want (1, 0)", played, dropped)
	}
}

func TestPoolLoadFailureDegrades(t *testing.T) {
	c := newTestCache(nil)
	p := NewPool(c, NullSink{}, "missing.wav", 0.5, 3)

	// Give the load goroutines time to resolve their failed futures
	time.Sleep(50 * time.Millisecond)

	if p.Ready() != 0 {
		t.Fatalf("failed loads produced %d voices", p.Ready())
	}
	p.Play() // Still safe
	if _, dropped := p.Stats(); dropped != 1 {
		t.Error("trigger on a dead pool should count as dropped")
	}
}
