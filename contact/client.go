package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrFailed is returned when the relay reports failure
var ErrFailed = errors.New("contact: relay failed")

// Result is the relay response body
type Result struct {
	Success bool `json:"success"`
}

// Client posts messages to the site API relay endpoint
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// Send posts msg to {BaseURL}/api/sendMail. No retries.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	url := strings.TrimRight(c.BaseURL, "/") + "/api/sendMail"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	var res Result
	_ = json.NewDecoder(resp.Body).Decode(&res)
	if resp.StatusCode != http.StatusOK || !res.Success {
		return fmt.Errorf("%w: status %d", ErrFailed, resp.StatusCode)
	}
	return nil
}
