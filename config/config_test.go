package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		HTTPServer: HTTPServerConfig{Port: 8080},
		Gateway:    GatewayConfig{BaseURL: "http://localhost:8000/api/v1", Timeout: 30, LoginPath: "/login"},
		Session:    SessionConfig{Backend: SessionBackendMemory},
		Sync:       SyncConfig{DefaultLimit: 20},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing base url", func(c *Config) { c.Gateway.BaseURL = "" }, "gateway.base_url is required"},
		{"zero timeout", func(c *Config) { c.Gateway.Timeout = 0 }, "gateway.timeout must be greater than 0"},
		{"unknown session backend", func(c *Config) { c.Session.Backend = "file" }, "session.backend must be"},
		{"redis backend needs host", func(c *Config) { c.Session.Backend = SessionBackendRedis }, "redis.host is required"},
		{"kafka needs brokers", func(c *Config) { c.Kafka = KafkaConfig{Enabled: true, Topic: "t"} }, "kafka.brokers"},
		{"kafka disabled ignores brokers", func(c *Config) { c.Kafka = KafkaConfig{} }, ""},
		{"page size over upstream max", func(c *Config) { c.Sync.DefaultLimit = 500 }, "sync.default_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
