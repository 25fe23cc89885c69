package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/glossd/deployok/server"
	"github.com/glossd/fetch"
)

const DefaultProbeTimeout = 3 * time.Second

// Probe checks that the deployment page is served on the local port.
// It's meant for container health checks where curl isn't available.
func Probe(port int, timeout time.Duration) error {
	url := fmt.Sprintf("http://127.0.0.1:%d/", port)
	body, err := fetch.Get[string](url, fetch.Config{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("probe %s failed: %w", url, err)
	}
	if !strings.Contains(body, server.Heading) {
		return fmt.Errorf("probe %s failed: page doesn't contain %q", url, server.Heading)
	}
	return nil
}
