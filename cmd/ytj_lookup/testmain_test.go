package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up YTJ_* settings from a local .env; CI runs without one.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
