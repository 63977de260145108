package config

import (
	"encoding/json"
	"os"

	"github.com/askarpov/loginward/internal/flagx"
	"github.com/askarpov/loginward/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "10m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	Backend                 string         `json:"backend"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config flags; when neither is
// set, no file is loaded. Unreadable or invalid files panic: a config file
// that was asked for but cannot be used is a startup fault.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.Backend != "" {
		config.Backend = c.Backend
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
}
