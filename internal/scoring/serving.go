package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL   string
	ModelName string
	Timeout   time.Duration
}

// ServingClient scores sessions against an out-of-process model server
// speaking the TensorFlow Serving REST predict protocol. Scoring is
// synchronous and is never retried; a failed call fails the request.
type ServingClient struct {
	cfg  Config
	http *http.Client
}

func NewServingClient(cfg Config) *ServingClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &ServingClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type predictRequest struct {
	Instances [][][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

func (c *ServingClient) predictURL() string {
	return fmt.Sprintf("%s/v1/models/%s:predict", c.cfg.BaseURL, c.cfg.ModelName)
}

func (c *ServingClient) statusURL() string {
	return fmt.Sprintf("%s/v1/models/%s", c.cfg.BaseURL, c.cfg.ModelName)
}

func (c *ServingClient) Score(ctx context.Context, features [][]float64) (float64, error) {
	payload, err := json.Marshal(predictRequest{Instances: [][][]float64{features}})
	if err != nil {
		return 0, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL(), bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call scoring backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read scoring response: %w", err)
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("parse scoring response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return 0, fmt.Errorf("scoring backend: %s", parsed.Error)
		}
		return 0, fmt.Errorf("scoring backend returned status %d", resp.StatusCode)
	}

	if len(parsed.Predictions) == 0 || len(parsed.Predictions[0]) == 0 {
		return 0, fmt.Errorf("scoring backend returned an empty prediction tensor")
	}

	p := parsed.Predictions[0][0]
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return 0, fmt.Errorf("scoring backend returned an out-of-range probability %v", p)
	}

	return p, nil
}

func (c *ServingClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL(), nil)
	if err != nil {
		return fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call scoring backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scoring backend reported status %d", resp.StatusCode)
	}
	return nil
}
