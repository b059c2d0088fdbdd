/* external.go
 * Shared HTTP plumbing for the provider clients. Both public APIs are unauthenticated,
 * so requests carry a descriptive User-Agent and go through a shared rate limiter to
 * stay well under the providers' informal quotas.
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "mmtui/0.1 (terminal bracket viewer)"

// Client is the shared HTTP transport for the topology and live providers.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter

	NCAABaseURL string
	ESPNSiteURL string
	ESPNV2URL   string
}

const (
	defaultNCAABase = "https://ncaa-api.henrygd.me"
	defaultESPNSite = "https://site.api.espn.com/apis/site/v2/sports/basketball/mens-college-basketball"
	defaultESPNV2   = "https://site.api.espn.com/apis/v2/sports/basketball/mens-college-basketball"
)

// NewClient creates a provider client with the given per-request timeout. A zero
// timeout falls back to 10 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),

		NCAABaseURL: defaultNCAABase,
		ESPNSiteURL: defaultESPNSite,
		ESPNV2URL:   defaultESPNV2,
	}
}

// getJSON performs a rate-limited GET and decodes the response body into out.
// Failures come back as *TransportError so the orchestrator can treat every source
// uniformly.
func (c *Client) getJSON(ctx context.Context, source, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Source: source, URL: url, Err: err}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Source: source, URL: url, Err: err}
	}
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Accept", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return &TransportError{Source: source, URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &TransportError{
			Source: source,
			URL:    url,
			Err:    fmt.Errorf("unexpected status %d", response.StatusCode),
		}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return &TransportError{Source: source, URL: url, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &MappingError{Source: source, Reason: fmt.Sprintf("invalid json: %v", err)}
	}
	return nil
}
