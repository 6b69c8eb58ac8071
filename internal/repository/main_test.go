//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/testutils"
)

// TestMain shares one Postgres container across the package and removes it on exit or interrupt
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		logger.New().WithField("signal", sig.String()).Warn("repository tests interrupted, removing postgres container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(interrupted)
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
