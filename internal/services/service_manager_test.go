package services

import (
	"context"
	"testing"
)

func TestServiceManager_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sm := NewServiceManager(env.manager, env.logger, env.validator, env.publisher)

	if err := sm.HealthCheck(ctx); err == nil {
		t.Error("expected health check to fail before Initialize")
	}

	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize should be a no-op: %v", err)
	}
	if sm.User() == nil || sm.Assessment() == nil || sm.Chat() == nil || sm.Hackathon() == nil || sm.Dashboard() == nil {
		t.Fatal("expected every service to be initialized")
	}
	if err := sm.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}

	if err := sm.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !env.publisher.closed {
		t.Error("expected the publisher to be closed on shutdown")
	}
	if err := sm.HealthCheck(ctx); err == nil {
		t.Error("expected health check to fail after shutdown")
	}
}

func TestServiceManager_PanicsBeforeInitialize(t *testing.T) {
	env := newTestEnv(t)
	sm := NewServiceManager(env.manager, env.logger, env.validator, nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using services before Initialize")
		}
	}()
	sm.User()
}
