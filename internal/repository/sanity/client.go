package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"bakehouse-api/internal/repository"
)

const requestTimeout = 10 * time.Second

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string

	// BaseURL overrides the derived API endpoint; used by tests.
	BaseURL string
}

// Client talks to the Sanity HTTP API: /data/mutate for writes and
// /data/query (GROQ with bound $params) for reads.
type Client struct {
	http      *resty.Client
	projectID string
	dataset   string
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io/v%s", cfg.ProjectID, cfg.APIVersion)
	}

	hc := resty.New().
		SetBaseURL(base).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		hc.SetAuthToken(cfg.Token)
	}

	return &Client{http: hc, projectID: cfg.ProjectID, dataset: cfg.Dataset}
}

type mutateRequest struct {
	Mutations []mutation `json:"mutations"`
}

type mutation struct {
	Create any `json:"create"`
}

type mutateResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// Create submits a single create mutation and returns the assigned
// document id.
func (c *Client) Create(ctx context.Context, doc any) (string, error) {
	var out mutateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(mutateRequest{Mutations: []mutation{{Create: doc}}}).
		SetQueryParam("returnIds", "true").
		SetResult(&out).
		Post("/data/mutate/" + c.dataset)
	if err != nil {
		return "", errors.Wrap(repository.ErrStoreUnavailable, err.Error())
	}
	if resp.IsError() {
		return "", errors.Wrapf(repository.ErrStoreRejected, "mutate status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Results) == 0 || out.Results[0].ID == "" {
		return "", errors.Wrap(repository.ErrStoreRejected, "mutate returned no document id")
	}
	return out.Results[0].ID, nil
}

type queryRequest struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch runs a GROQ query with params bound server-side and decodes the
// result into out.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	var qr queryResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(queryRequest{Query: query, Params: params}).
		SetResult(&qr).
		Post("/data/query/" + c.dataset)
	if err != nil {
		return errors.Wrap(repository.ErrStoreUnavailable, err.Error())
	}
	if resp.IsError() {
		return errors.Wrapf(repository.ErrStoreRejected, "query status %d: %s", resp.StatusCode(), resp.String())
	}
	if out == nil || len(qr.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(qr.Result, out); err != nil {
		return errors.Wrap(err, "decode query result")
	}
	return nil
}

var _ repository.DocumentStore = (*Client)(nil)
