package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bankist/internal/flagx"
	"github.com/dmitrijs2005/bankist/internal/timex"
)

// JsonConfig is the DTO for the optional JSON config file. Durations may be
// strings like "100s" or integer nanoseconds (see timex.Duration):
//
//	{
//	  "seed_file": "accounts.json",
//	  "session_timeout": "100s",
//	  "log_level": "debug"
//	}
type JsonConfig struct {
	SeedFile       string         `json:"seed_file"`
	SessionTimeout timex.Duration `json:"session_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Absent file means no-op; unreadable or malformed files panic (startup-time
// misconfiguration, nothing to recover). Only fields present in the file
// override the defaults.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SeedFile != "" {
		cfg.SeedFile = jc.SeedFile
	}
	if jc.SessionTimeout.Duration != 0 {
		cfg.SessionTimeout = jc.SessionTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
