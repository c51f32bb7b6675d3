// Package camara is a client for the Câmara dos Deputados open-data API
// (Dados Abertos v2).
package camara

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// DefaultBaseURL is the public Dados Abertos v2 endpoint.
const DefaultBaseURL = "https://dadosabertos.camara.leg.br/api/v2"

const (
	defaultTimeout  = 25 * time.Second
	defaultRetries  = 3
	retryBackoff    = 500 * time.Millisecond
	retryBackoffCap = 5 * time.Second
)

// APIError marks a transport or HTTP failure against the API. Callers can
// tell it apart from data noise with errors.As; it is the one error kind
// this layer lets out.
type APIError struct {
	URL string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("camara api (%s): %v", e.URL, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client talks to the Dados Abertos API.
type Client struct {
	http       *resty.Client
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.http.SetBaseURL(strings.TrimRight(u, "/")) }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = uint64(n)
		}
	}
}

// NewClient creates a Dados Abertos client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
		maxRetries: defaultRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches url (relative to the base URL, or absolute for uriAutores
// references) into result, retrying transient failures with capped
// exponential backoff. 4xx responses are not retried.
func (c *Client) get(ctx context.Context, url string, params map[string]string, result any) error {
	backoff := retry.WithMaxRetries(c.maxRetries,
		retry.WithCappedDuration(retryBackoffCap, retry.NewExponential(retryBackoff)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(result).
			Get(url)
		if err != nil {
			return retry.RetryableError(err)
		}
		if resp.StatusCode() >= 500 {
			return retry.RetryableError(fmt.Errorf("status %d", resp.StatusCode()))
		}
		if resp.IsError() {
			return fmt.Errorf("status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
		}
		return nil
	})
	if err != nil {
		return &APIError{URL: url, Err: err}
	}
	return nil
}

// ListPropositions fetches propositions for each requested type and
// concatenates the results in request order. The keyword filter, when any,
// is applied downstream over the normalized rows, never in the URL.
func (c *Client) ListPropositions(ctx context.Context, p ListParams) ([]map[string]any, error) {
	types := p.Types
	if len(types) == 0 {
		types = []string{"PL"}
	}
	items := p.Items
	if items <= 0 {
		items = 100
	}
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}
	order := p.Order
	if order == "" {
		order = "DESC"
	}

	var all []map[string]any
	for _, tp := range types {
		params := map[string]string{
			"siglaTipo":  tp,
			"itens":      strconv.Itoa(items),
			"ordem":      order,
			"ordenarPor": orderBy,
		}
		if p.Year > 0 {
			params["ano"] = strconv.Itoa(p.Year)
		}

		var env listEnvelope
		if err := c.get(ctx, "/proposicoes", params, &env); err != nil {
			return nil, fmt.Errorf("list propositions (%s): %w", tp, err)
		}
		log.Debug("listed propositions", "tipo", tp, "count", len(env.Dados))
		all = append(all, env.Dados...)
	}
	return all, nil
}

// Proposition fetches the detail record of a single proposition.
func (c *Client) Proposition(ctx context.Context, id int64) (map[string]any, error) {
	var env itemEnvelope
	if err := c.get(ctx, fmt.Sprintf("/proposicoes/%d", id), nil, &env); err != nil {
		return nil, fmt.Errorf("get proposition %d: %w", id, err)
	}
	return env.Dados, nil
}

// Tramitations fetches the tramitation events of one proposition.
func (c *Client) Tramitations(ctx context.Context, id int64) ([]map[string]any, error) {
	var env listEnvelope
	if err := c.get(ctx, fmt.Sprintf("/proposicoes/%d/tramitacoes", id), nil, &env); err != nil {
		return nil, fmt.Errorf("get tramitations %d: %w", id, err)
	}
	return env.Dados, nil
}

// AuthorsByURI fetches the raw author list behind a uriAutores reference.
// A blank reference or a failed request yields an empty list: author data is
// enrichment, and losing it should never fail a listing.
func (c *Client) AuthorsByURI(ctx context.Context, uri string) []map[string]any {
	if strings.TrimSpace(uri) == "" {
		return nil
	}
	var env listEnvelope
	if err := c.get(ctx, uri, nil, &env); err != nil {
		log.Debug("authors fetch failed", "uri", uri, "err", err)
		return nil
	}
	return env.Dados
}
