package xr

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/orb-garden/vmath"
)

const (
	// snapshotMaxAge marks a feed stale: an immersive runtime that stops
	// sending frames reads as "not presenting" rather than replaying the
	// last pose forever
	snapshotMaxAge = 500 * time.Millisecond

	reconnectBaseDelay = 250 * time.Millisecond
	reconnectMaxDelay  = 5 * time.Second
)

// feedMessage is one frame on the wire
type feedMessage struct {
	Presenting bool         `json:"presenting"`
	Sources    []feedSource `json:"sources"`
}

type feedSource struct {
	ID   string      `json:"id"`
	Grip *[3]float64 `json:"grip"` // Absent when the source has no grip pose
}

// RemoteSession consumes a websocket pose feed and serves it as a Session
//
// A reader goroutine keeps the latest frame in an atomic snapshot; the
// frame loop polls Presenting/Frame without blocking on the network.
// Connection loss degrades to "not presenting" and reconnects with backoff
type RemoteSession struct {
	url    string
	log    *logrus.Logger
	cancel context.CancelFunc
	latest atomic.Pointer[remoteFrame]
}

// DialRemote starts a pose-feed client for the given websocket URL
// Returns immediately; the connection is established in the background
func DialRemote(url string, log *logrus.Logger) *RemoteSession {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RemoteSession{
		url:    url,
		log:    log,
		cancel: cancel,
	}
	go s.run(ctx)
	return s
}

// Close stops the reader goroutine and drops the connection
func (s *RemoteSession) Close() {
	s.cancel()
}

// Presenting implements Session
func (s *RemoteSession) Presenting() bool {
	f := s.latest.Load()
	return f != nil && f.presenting && time.Since(f.received) < snapshotMaxAge
}

// Frame implements Session
func (s *RemoteSession) Frame() (Frame, bool) {
	f := s.latest.Load()
	if f == nil || !f.presenting || time.Since(f.received) >= snapshotMaxAge {
		return nil, false
	}
	return f, true
}

// run maintains the connection for the session lifetime
func (s *RemoteSession) run(ctx context.Context) {
	delay := reconnectBaseDelay
	for ctx.Err() == nil {
		if s.connect(ctx) {
			delay = reconnectBaseDelay // Reset after a healthy session
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		if delay *= 2; delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}

// connect dials and reads until failure; returns true if at least one
// frame arrived
func (s *RemoteSession) connect(ctx context.Context) bool {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		if s.log != nil {
			s.log.WithError(err).Debug("pose feed dial failed")
		}
		return false
	}
	defer conn.Close()

	if s.log != nil {
		s.log.WithField("url", s.url).Info("pose feed connected")
	}

	// Unblock ReadMessage on shutdown
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	got := false
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if s.log != nil && ctx.Err() == nil {
				s.log.WithError(err).Warn("pose feed closed")
			}
			return got
		}
		if f, err := decodeFrame(data); err == nil {
			s.latest.Store(f)
			got = true
		} else if s.log != nil {
			s.log.WithError(err).Debug("pose feed bad frame")
		}
	}
}

// decodeFrame parses one wire message into a served snapshot
func decodeFrame(data []byte) (*remoteFrame, error) {
	var msg feedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	f := &remoteFrame{
		presenting: msg.Presenting,
		received:   time.Now(),
	}
	for _, src := range msg.Sources {
		rs := &remoteSource{id: src.ID}
		if src.Grip != nil {
			rs.grip = &vmath.Vec3{X: src.Grip[0], Y: src.Grip[1], Z: src.Grip[2]}
		}
		f.sources = append(f.sources, rs)
	}
	return f, nil
}

// remoteFrame is an immutable snapshot served as a Frame
type remoteFrame struct {
	presenting bool
	received   time.Time
	sources    []*remoteSource
}

type remoteRef struct{}

func (f *remoteFrame) ReferenceSpace() (Space, bool) {
	return remoteRef{}, true
}

func (f *remoteFrame) InputSources() []InputSource {
	out := make([]InputSource, len(f.sources))
	for i, s := range f.sources {
		out[i] = s
	}
	return out
}

func (f *remoteFrame) Pose(space, ref Space) (Pose, bool) {
	src, ok := space.(*remoteSource)
	if !ok || src.grip == nil {
		return Pose{}, false
	}
	return Pose{Position: *src.grip}, true
}

type remoteSource struct {
	id   string
	grip *vmath.Vec3
}

// GripSpace returns the source itself as its grip-space token, absent
// when the feed carried no grip pose for it
func (s *remoteSource) GripSpace() (Space, bool) {
	if s.grip == nil {
		return nil, false
	}
	return s, true
}
