package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orb-garden/constant"
)

// Pool is a round-robin set of voices for one logical sound effect
//
// Voices are appended as their shared buffer finishes loading, so the pool
// is usable as soon as a single voice is ready. Play with zero voices is a
// silent drop, never an error: a pool under cold load may receive early
// triggers
type Pool struct {
	mu      sync.Mutex
	sink    Sink
	voices  []*voice
	cursor  int
	volume  float64
	source  string
	played  uint64
	dropped uint64
}

// NewPool creates a pool of size voices over one source and starts the
// loads immediately. size <= 0 falls back to constant.DefaultPoolSize
//
// Each of the size load futures appends one voice on success; a failed
// load leaves the pool one voice short (possibly zero), which only
// degrades playback
func NewPool(cache *BufferCache, sink Sink, source string, volume float64, size int) *Pool {
	if size <= 0 {
		size = constant.DefaultPoolSize
	}

	p := &Pool{
		sink:   sink,
		volume: volume,
		source: source,
	}

	for i := 0; i < size; i++ {
		future := cache.Load(source)
		go func() {
			res := <-future
			if res.Err != nil {
				return // Already logged by the cache
			}
			p.adoptBuffer(res.Buffer)
		}()
	}

	return p
}

// adoptBuffer appends a fresh voice built from buf
func (p *Pool) adoptBuffer(buf *beep.Buffer) {
	v := newVoice(buf)
	p.sink.Add(v)

	p.mu.Lock()
	p.voices = append(p.voices, v)
	p.mu.Unlock()
}

// Play triggers the next voice in round-robin order at the pool volume
//
// If the selected voice is still playing it is stopped first, so one slot
// never overlaps itself while distinct slots overlap freely. The cursor
// wraps against the count of voices ready at call time, which can still be
// growing during cold load
func (p *Pool) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.voices) == 0 {
		p.dropped++
		return
	}

	if p.cursor >= len(p.voices) {
		p.cursor = 0
	}
	v := p.voices[p.cursor]

	p.sink.Lock()
	if v.playing() {
		v.stop()
	}
	v.start(p.volume)
	p.sink.Unlock()

	p.cursor = (p.cursor + 1) % len(p.voices)
	p.played++
}

// Ready returns the number of loaded voices
func (p *Pool) Ready() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.voices)
}

// Source returns the identifier the pool was built from
func (p *Pool) Source() string {
	return p.source
}

// Stats returns played and dropped trigger counts
func (p *Pool) Stats() (played, dropped uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.dropped
}
