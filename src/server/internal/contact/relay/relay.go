package contactrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	DefaultEndpoint = "https://formspree.io/f/xzzggeln"
	relayTimeout    = 15 * time.Second
)

//counterfeiter:generate . Relay
type Relay interface {
	Send(ctx context.Context, submission contactentity.Submission) error
}

var _ Relay = FormRelay{}

// FormRelay forwards submissions to a hosted form endpoint, once, without retries
type FormRelay struct {
	endpoint string
	client   *http.Client
}

func NewFormRelay(endpoint string, client *http.Client) FormRelay {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if client == nil {
		client = &http.Client{Timeout: relayTimeout}
	}

	return FormRelay{
		endpoint: endpoint,
		client:   client,
	}
}

func (f FormRelay) Send(ctx context.Context, submission contactentity.Submission) error {
	body, err := json.Marshal(submission)
	if err != nil {
		return errors.Wrap(err, "Failed to marshal submission")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "Failed to build relay request")
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := f.client.Do(request)
	if err != nil {
		return errors.Wrap(err, "Failed to reach the form endpoint")
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return errors.Newf("Form endpoint responded %d: %s", response.StatusCode, string(detail))
	}

	return nil
}
