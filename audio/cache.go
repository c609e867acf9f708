package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

// Opener resolves a source identifier to raw encoded bytes
type Opener func(id string) (io.ReadCloser, error)

// Decoder turns raw encoded audio into a seekable sample stream
type Decoder func(r io.ReadSeeker) (beep.StreamSeekCloser, beep.Format, error)

// LoadResult carries the outcome of one Load call
// Exactly one of Buffer and Err is set
type LoadResult struct {
	Buffer *beep.Buffer
	Format beep.Format
	Err    error
}

// cacheEntry is a single in-flight or completed decode
type cacheEntry struct {
	ready  chan struct{} // Closed when buf/err are final
	buf    *beep.Buffer
	format beep.Format
	err    error
}

// BufferCache loads and decodes audio sources asynchronously
// Each source is opened and decoded at most once; every Load call gets its
// own future resolved from the shared entry
type BufferCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry

	opener Opener
	decode Decoder
	log    *logrus.Logger
}

// NewBufferCache creates a cache reading sources through opener
// A nil logger disables load-failure logging
func NewBufferCache(opener Opener, log *logrus.Logger) *BufferCache {
	return &BufferCache{
		entries: make(map[string]*cacheEntry),
		opener:  opener,
		decode:  wavDecode,
		log:     log,
	}
}

// wavDecode is the default decoder
func wavDecode(r io.ReadSeeker) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(r)
}

// SetDecoder replaces the decoder, for non-WAV assets or tests
// Must be called before the first Load
func (c *BufferCache) SetDecoder(d Decoder) {
	c.decode = d
}

// Load requests the decoded buffer for id
// The returned channel receives exactly one LoadResult and is never closed
// early; a failed load resolves with Err set and is logged once
func (c *BufferCache) Load(id string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)

	if id == "" {
		ch <- LoadResult{Err: ErrEmptySource}
		return ch
	}

	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		e = &cacheEntry{ready: make(chan struct{})}
		c.entries[id] = e
		go c.fill(id, e)
	}
	c.mu.Unlock()

	go func() {
		<-e.ready
		ch <- LoadResult{Buffer: e.buf, Format: e.format, Err: e.err}
	}()

	return ch
}

// fill opens, decodes and buffers one source, then publishes the entry
func (c *BufferCache) fill(id string, e *cacheEntry) {
	defer close(e.ready)

	e.buf, e.format, e.err = c.loadOnce(id)
	if e.err != nil && c.log != nil {
		c.log.WithField("source", id).WithError(e.err).Error("audio load failed")
	}
}

func (c *BufferCache) loadOnce(id string) (*beep.Buffer, beep.Format, error) {
	rc, err := c.opener(id)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %q: %w", id, err)
	}

	// Buffer the whole source so the decoder can seek regardless of the
	// opener's transport
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("read %q: %w", id, err)
	}

	stream, format, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: %q: %v", ErrDecodeFailure, id, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	return buf, format, nil
}
