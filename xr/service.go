package xr

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/orb-garden/service"
)

var _ service.Service = (*PoseFeedService)(nil)

// PoseFeedService owns the remote pose feed behind a Service lifecycle
// Without a feed URL the service stays inert and Session returns nil,
// which the frame loop treats as "no immersive session"
type PoseFeedService struct {
	log     *logrus.Logger
	url     string
	session *RemoteSession
}

// NewPoseFeedService creates a new pose feed service
func NewPoseFeedService(log *logrus.Logger) *PoseFeedService {
	return &PoseFeedService{log: log}
}

// Name implements Service
func (s *PoseFeedService) Name() string {
	return "pose-feed"
}

// Dependencies implements Service
func (s *PoseFeedService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: string - websocket URL of the pose feed (empty disables)
func (s *PoseFeedService) Init(args ...any) error {
	if len(args) > 0 {
		if url, ok := args[0].(string); ok {
			s.url = url
		}
	}
	return nil
}

// Start implements Service
// Dials in the background; an unreachable feed just never presents
func (s *PoseFeedService) Start() error {
	if s.url == "" {
		return nil
	}
	s.session = DialRemote(s.url, s.log)
	return nil
}

// Stop implements Service
func (s *PoseFeedService) Stop() error {
	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
	return nil
}

// Session returns the active feed, nil when the service is disabled
func (s *PoseFeedService) Session() Session {
	if s.session == nil {
		return nil
	}
	return s.session
}
