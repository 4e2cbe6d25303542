package netinfo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// PublicIPEndpoint echoes the caller's public address as plain text.
	PublicIPEndpoint = "https://api.ipify.org"

	// DefaultPublicIPTimeout bounds the echo request so a dead network
	// degrades to a marker instead of hanging the report.
	DefaultPublicIPTimeout = 5 * time.Second

	// Unavailable is printed in place of the public IP when the echo
	// service cannot be reached.
	Unavailable = "unable to fetch"
)

// PublicIP asks endpoint which address this host appears as from the
// internet. client may be nil, in which case a client with
// DefaultPublicIPTimeout is used. Callers substitute Unavailable on
// error; the lookup is never fatal.
func PublicIP(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultPublicIPTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("public IP echo returned %s", resp.Status)
	}

	// Echo services answer with a bare address; anything longer is
	// an error page.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", err
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("public IP echo returned %q, not an address", ip)
	}
	return ip, nil
}
