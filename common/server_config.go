package common

import (
	"fmt"
	"io"
	"os"
	"time"

	yaml "sigs.k8s.io/yaml/goyaml.v2"
)

const (
	DefaultPort                   = 80
	LogdirStdout                  = "stdout"
	LogFileName                   = "deployok.log"
	defaultShutdownTimeoutSeconds = 5
)

type ServerConfig struct {
	Port                   int
	Logdir                 string
	ShutdownTimeoutSeconds float64 `yaml:"shutdownTimeoutSeconds"`
}

func (sc ServerConfig) WithDefaults() ServerConfig {
	if sc.Port == 0 {
		sc.Port = DefaultPort
	}
	if sc.Logdir == "" {
		sc.Logdir = LogdirStdout
	}
	if sc.ShutdownTimeoutSeconds == 0 {
		sc.ShutdownTimeoutSeconds = defaultShutdownTimeoutSeconds
	}
	return sc
}

func (sc ServerConfig) Validate() error {
	if sc.Port < 1 || sc.Port > 65535 {
		return fmt.Errorf("invalid port: %d", sc.Port)
	}
	if sc.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("invalid shutdownTimeoutSeconds: %v", sc.ShutdownTimeoutSeconds)
	}
	return nil
}

// Addr listens on all interfaces.
func (sc ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", sc.Port)
}

func (sc ServerConfig) ShutdownTimeout() time.Duration {
	return time.Millisecond * time.Duration(sc.ShutdownTimeoutSeconds*1000)
}

// ReadServerConfig returns the defaults if path is empty.
func ReadServerConfig(path string) (ServerConfig, error) {
	if path == "" {
		return ServerConfig{}.WithDefaults(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("couldn't open server config: %w", err)
	}
	defer f.Close()
	return readServerConfig(f)
}

func readServerConfig(f io.Reader) (ServerConfig, error) {
	str, err := io.ReadAll(f)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("couldn't read server config: %w", err)
	}
	var c ServerConfig
	err = yaml.UnmarshalStrict(str, &c)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("failed to unmarshal server config: %w", err)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return c, nil
}
