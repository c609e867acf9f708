package xr

import (
	"testing"

	"github.com/lixenwraith/orb-garden/service"
)

func TestPoseFeedServiceDisabled(t *testing.T) {
	var svc service.Service = NewPoseFeedService(nil)

	if svc.Name() != "pose-feed" {
		t.Errorf("name = %q, want pose-feed", svc.Name())
	}
	if svc.Dependencies() != nil {
		t.Errorf("unexpected dependencies %v", svc.Dependencies())
	}

	// No URL: the whole lifecycle is an inert no-op
	if err := svc.Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s := svc.(*PoseFeedService).Session(); s != nil {
		t.Error("disabled feed should expose no session")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestPoseFeedServiceLifecycle(t *testing.T) {
	svc := NewPoseFeedService(nil)

	// Nothing listens on this port; the dial retries in the background
	// and the session simply never presents
	if err := svc.Init("ws://127.0.0.1:1/poses"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	session := svc.Session()
	if session == nil {
		t.Fatal("started feed should expose a session")
	}
	if session.Presenting() {
		t.Error("unreachable feed should not present")
	}

	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if svc.Session() != nil {
		t.Error("stopped feed should expose no session")
	}

	// Stop must be idempotent
	if err := svc.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
