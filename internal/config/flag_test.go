package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("flags override defaults", func(t *testing.T) {
		os.Args = []string{"testbin", "-s", "fixtures.json", "-t", "30", "-l", "debug"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "fixtures.json", cfg.SeedFile)
		assert.Equal(t, 30*time.Second, cfg.SessionTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("absent flags keep defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, 100*time.Second, cfg.SessionTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}
