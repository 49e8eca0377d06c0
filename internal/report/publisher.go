// HTTP report publisher with retry logic. Marshals the report to JSON,
// compresses with gzip, and POSTs it to the configured endpoint with
// exponential backoff on failure.
package report

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/benchkit/sysreport/internal/config"
	"github.com/benchkit/sysreport/internal/models"
)

const (
	// maxRetries is the maximum number of retry attempts before giving up.
	maxRetries = 3

	// baseRetryDelay is the base delay for exponential backoff between retries.
	baseRetryDelay = 2 * time.Second
)

// Publisher transmits a report to the configured HTTP endpoint.
type Publisher struct {
	client *http.Client
	cfg    *config.Config
	logger *zap.Logger

	// retryDelay is the backoff base, shortened in tests.
	retryDelay time.Duration
}

// NewPublisher creates a Publisher with the given configuration and logger.
func NewPublisher(cfg *config.Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: &http.Client{
			Timeout: cfg.Report.Timeout.Duration,
		},
		cfg:        cfg,
		logger:     logger,
		retryDelay: baseRetryDelay,
	}
}

// Publish attempts to send the report to the endpoint, retrying with
// exponential backoff. Returns the last error when all attempts fail.
func (p *Publisher) Publish(ctx context.Context, rep models.Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	// Compress with gzip
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := gz.Write(data); err != nil {
		return fmt.Errorf("compressing report: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("finalizing gzip compression: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * p.retryDelay
			p.logger.Warn("Retrying publish",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if lastErr = p.doPublish(ctx, compressed.Bytes()); lastErr == nil {
			p.logger.Debug("Report published")
			return nil
		}

		p.logger.Warn("Publish failed",
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}

	return fmt.Errorf("publishing report: %w", lastErr)
}

// doPublish performs a single HTTP POST to the report endpoint.
func (p *Publisher) doPublish(ctx context.Context, compressedData []byte) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.cfg.Report.URL,
		bytes.NewReader(compressedData),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+p.cfg.Report.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
