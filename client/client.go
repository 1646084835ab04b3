package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mission_control/viewer/metrics"
	"mission_control/viewer/models"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-call correlation id upstream.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 4 << 10

// Client issues read-only calls against {apiUrl}/mission-viewing
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *tokenSigner
}

type Option func(*Client)

// WithHTTPClient swaps the transport, e.g. to set a timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithServiceToken signs every request with an HS256 bearer token.
// An empty secret leaves requests unauthenticated.
func WithServiceToken(secret []byte, subject string) Option {
	return func(c *Client) {
		if len(secret) == 0 {
			c.signer = nil
			return
		}
		c.signer = &tokenSigner{
			secret:  secret,
			subject: subject,
			ttl:     defaultTokenTTL,
			now:     time.Now,
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListMissions produces every mission in server order.
func (c *Client) ListMissions() *Producer[[]models.Mission] {
	return getJSON[[]models.Mission](c, "list", "/")
}

// ListMissionsFiltered produces the missions matching filter.
func (c *Client) ListMissionsFiltered(filter models.MissionFilter) *Producer[[]models.Mission] {
	path := "/filter"
	if q := filter.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	return getJSON[[]models.Mission](c, "filter", path)
}

// GetMission produces a single mission. A missing mission surfaces as
// whatever the API answers, typically ErrNotFound.
func (c *Client) GetMission(id int) *Producer[models.Mission] {
	if id <= 0 {
		return failedProducer[models.Mission](fmt.Errorf("%w: %d", ErrInvalidMissionID, id))
	}
	return getJSON[models.Mission](c, "get", "/"+strconv.Itoa(id))
}

// GetMissionCrew produces the crew of a mission.
func (c *Client) GetMissionCrew(id int) *Producer[[]models.Brawler] {
	if id <= 0 {
		return failedProducer[[]models.Brawler](fmt.Errorf("%w: %d", ErrInvalidMissionID, id))
	}
	return getJSON[[]models.Brawler](c, "crew", "/"+strconv.Itoa(id)+"/crew")
}

func getJSON[T any](c *Client, endpoint, path string) *Producer[T] {
	url := c.baseURL + path
	return NewProducer(func(ctx context.Context) (T, error) {
		var out T

		start := time.Now()
		err := c.do(ctx, url, &out)
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()

		return out, err
	})
}

func (c *Client) do(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("mission api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())

	if c.signer != nil {
		token, err := c.signer.sign()
		if err != nil {
			return fmt.Errorf("mission api: sign token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mission api: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: http.MethodGet,
			URL:    url,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("mission api: decode %s: %w", url, err)
	}
	return nil
}

func outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &statusErr):
		return strconv.Itoa(statusErr.Code)
	default:
		return "error"
	}
}
