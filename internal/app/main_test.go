package app_test

import (
	"log"
	"os"
	"testing"

	"healthycoder/internal/config"
)

// testCfg is read once for the whole package run.
var testCfg config.Config

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	testCfg = cfg
	log.Printf("running app tests in %q environment", cfg.Environment)
	code := m.Run()
	log.Printf("app tests finished with exit code %d", code)
	os.Exit(code)
}
