package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.calendly.com"

// CalendlyClient implements Gateway against the Calendly REST API.
type CalendlyClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

var _ Gateway = (*CalendlyClient)(nil)

// NewCalendlyClient builds a gateway client with a bounded request timeout.
func NewCalendlyClient(apiToken string) *CalendlyClient {
	return &CalendlyClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiToken:   apiToken,
	}
}

// NewCalendlyClientWithBaseURL is intended for tests against a local server.
func NewCalendlyClientWithBaseURL(apiToken, baseURL string) *CalendlyClient {
	c := NewCalendlyClient(apiToken)
	c.baseURL = baseURL
	return c
}

type collectionResponse struct {
	Collection []collectionItem `json:"collection"`
}

type collectionItem struct {
	URI       string `json:"uri"`
	StartTime string `json:"start_time"`
}

// ListEventTypes returns the URIs of the account's event types.
func (c *CalendlyClient) ListEventTypes(ctx context.Context) ([]string, error) {
	var resp collectionResponse
	if err := c.getJSON(ctx, "/event_types", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list event types: %w", err)
	}

	types := make([]string, 0, len(resp.Collection))
	for _, item := range resp.Collection {
		if item.URI != "" {
			types = append(types, item.URI)
		}
	}
	return types, nil
}

// ListAvailableSlots returns up to MaxOfferedSlots start times for the event type.
func (c *CalendlyClient) ListAvailableSlots(ctx context.Context, eventType string) ([]string, error) {
	if eventType == "" {
		return nil, fmt.Errorf("event type cannot be empty")
	}

	params := url.Values{"event_type": {eventType}}
	var resp collectionResponse
	if err := c.getJSON(ctx, "/event_type_available_times", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}

	var slots []string
	for _, item := range resp.Collection {
		if item.StartTime == "" {
			continue
		}
		slots = append(slots, item.StartTime)
		if len(slots) == MaxOfferedSlots {
			break
		}
	}
	return slots, nil
}

// BookSlot schedules the event. Calendly insists on an invitee email, so
// a synthetic one is derived from the phone number here; the engine only
// ever supplies the phone.
func (c *CalendlyClient) BookSlot(ctx context.Context, eventType, inviteeName, inviteePhone, slot string) (bool, error) {
	if eventType == "" || slot == "" {
		return false, fmt.Errorf("event type and slot are required")
	}

	body := map[string]interface{}{
		"event_type": eventType,
		"invitee": map[string]string{
			"name":  inviteeName,
			"email": syntheticEmail(inviteePhone),
		},
		"start_time": slot,
	}

	status, err := c.postJSON(ctx, "/scheduled_events", body)
	if err != nil {
		return false, fmt.Errorf("failed to book slot: %w", err)
	}
	return status >= 200 && status < 300, nil
}

func syntheticEmail(phone string) string {
	return phone + "@fake.com"
}

func (c *CalendlyClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[calendly] GET %s returned %d: %s", path, resp.StatusCode, string(raw))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *CalendlyClient) postJSON(ctx context.Context, path string, body interface{}) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, nil
}
