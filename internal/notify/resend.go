package notify

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	resendBaseURL  = "https://api.resend.com"
	resendTimeout  = 15 * time.Second
	resendEndpoint = "/emails"
)

// ResendClient sends through the Resend HTTP API. With an empty API key
// every Send fails with ErrNotConfigured instead of panicking, so the
// service still takes orders when email is not set up.
type ResendClient struct {
	http   *resty.Client
	apiKey string
}

// NewResendClient builds a client; baseURL is overridable for tests and
// falls back to the public API when empty.
func NewResendClient(apiKey, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = resendBaseURL
	}
	return &ResendClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(resendTimeout).
			SetHeader("Content-Type", "application/json"),
		apiKey: apiKey,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (c *ResendClient) Send(ctx context.Context, email Email) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	var out resendResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(resendRequest{
			From:    email.From,
			To:      email.To,
			ReplyTo: email.ReplyTo,
			Subject: email.Subject,
			HTML:    email.HTML,
		}).
		SetResult(&out).
		Post(resendEndpoint)
	if err != nil {
		return "", errors.Wrap(err, "email send")
	}
	if resp.IsError() {
		return "", errors.Errorf("email send status %d: %s", resp.StatusCode(), resp.String())
	}
	return out.ID, nil
}

var _ EmailSender = (*ResendClient)(nil)
