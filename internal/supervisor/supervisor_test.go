// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

// fakeServer blocks in ListenAndServe until Shutdown is called.
type fakeServer struct {
	serveErr   error
	shutdownCh chan struct{}
	shutdowns  int
}

func newFakeServer(serveErr error) *fakeServer {
	return &fakeServer{serveErr: serveErr, shutdownCh: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	if f.serveErr != nil {
		return f.serveErr
	}
	<-f.shutdownCh
	return nil
}

func (f *fakeServer) Shutdown(_ context.Context) error {
	f.shutdowns++
	close(f.shutdownCh)
	return nil
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	srv := newFakeServer(nil)
	svc := NewHTTPService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}

	if srv.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", srv.shutdowns)
	}
}

func TestHTTPServiceStartupFailure(t *testing.T) {
	startErr := errors.New("address already in use")
	svc := NewHTTPService(newFakeServer(startErr), time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, startErr) {
		t.Fatalf("Serve() error = %v, want wrapped %v", err, startErr)
	}
}

func TestTreeSupervisesService(t *testing.T) {
	tree := NewTree(slog.New(slog.DiscardHandler), DefaultTreeConfig())

	srv := newFakeServer(nil)
	tree.AddAPIService(NewHTTPService(srv, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	// Give the tree a moment to start the service, then shut down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop after cancellation")
	}

	if srv.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", srv.shutdowns)
	}
}
