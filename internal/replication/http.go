package replication

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/vigilia/caseta/internal/common"
)

const (
	publishMaxRetries   = 2
	publishBaseBackoff  = 200 * time.Millisecond
	messageIDHeaderName = "X-Caseta-Message-Id"
)

// HTTPSink replicates records to a remote collector over HTTP. Each record is
// POSTed as JSON to {base}/{collection} with a unique message id header so the
// collector can drop the occasional duplicate a retry may produce.
type HTTPSink struct {
	client *resty.Client
}

// NewHTTPSink returns a sink posting to the given base URL.
func NewHTTPSink(baseURL string, timeout time.Duration) *HTTPSink {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &HTTPSink{client: client}
}

// Publish sends the record, retrying transient failures with exponential
// backoff. Client errors (4xx) are not retried.
func (s *HTTPSink) Publish(ctx context.Context, collection string, record any) error {
	messageID := uuid.NewString()

	backoff := retry.WithMaxRetries(publishMaxRetries, retry.NewExponential(publishBaseBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader(messageIDHeaderName, messageID).
			SetBody(record).
			Post("/" + collection)
		if err != nil {
			return retry.RetryableError(err)
		}
		if resp.IsError() {
			if resp.StatusCode() >= 500 {
				return retry.RetryableError(fmt.Errorf("status %s", resp.Status()))
			}
			return fmt.Errorf("status %s", resp.Status())
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: publish %s: %v", common.ErrReplicationFailed, collection, err)
	}
	return nil
}
