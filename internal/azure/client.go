package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// DefaultAPIVersion pins the chat-completions API revision.
const DefaultAPIVersion = "2024-02-15-preview"

// Client issues chat-completion requests against an Azure OpenAI
// deployment. One request per process; no retries, no streaming.
type Client struct {
	HTTPClient *http.Client
	APIVersion string
}

// NewClient returns a client on the default transport and API version.
func NewClient() *Client {
	return &Client{HTTPClient: http.DefaultClient, APIVersion: DefaultAPIVersion}
}

// Send posts req to the deployment's chat-completions endpoint and returns
// the raw response body regardless of HTTP status. The caller interprets
// the body; transport and serialization failures come back as errors.
func (c *Client) Send(ctx context.Context, endpoint, deployment, apiKey string, req ChatRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		endpoint, deployment, c.APIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", apiKey)

	log.Debug("sending chat completion", "url", url, "bytes", len(payload))
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	log.Debug("received response", "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}
