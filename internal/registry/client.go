package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jonathan/ytj-lookup/internal/fetch"
	"github.com/jonathan/ytj-lookup/internal/logging"
	"github.com/jonathan/ytj-lookup/internal/schemas"
	"github.com/jonathan/ytj-lookup/internal/types"
	schemafiles "github.com/jonathan/ytj-lookup/schemas"
)

// DefaultBaseURL is the PRH open data company search endpoint.
const DefaultBaseURL = "https://avoindata.prh.fi/opendata-ytj-api/v3/companies"

// businessIDParam is the query parameter the registry filters on.
const businessIDParam = "businessId"

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// DumpPath, when set, receives the raw body of every successful response.
	DumpPath string
	// SchemaCheck logs registry documents that drift from the bundled schema.
	SchemaCheck bool
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client looks up companies by business ID.
type Client struct {
	baseURL     string
	options     *fetch.Options
	dumpPath    string
	schemaCheck bool
	logger      *slog.Logger
}

// Outcome is the result of a lookup that reached the registry and got a
// well-formed answer. Found is false when neither list held a record.
type Outcome struct {
	BusinessID string
	Found      bool
	Company    types.NormalizedCompany
	Response   *Response
}

// Result converts the outcome to its presentation form.
func (o *Outcome) Result() *types.LookupResult {
	if !o.Found {
		return types.NotFoundResult(o.BusinessID)
	}
	return types.FoundResult(o.BusinessID, o.Company)
}

// NewClient creates a registry client. A nil logger discards log output.
func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid registry base URL %q", cfg.BaseURL)
	}

	opts := fetch.DefaultOptions()
	if cfg.Timeout > 0 {
		opts.Timeout = cfg.Timeout
	}
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	opts.Client = cfg.HTTPClient

	if logger == nil {
		logger = logging.Discard()
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		options:     opts,
		dumpPath:    cfg.DumpPath,
		schemaCheck: cfg.SchemaCheck,
		logger:      logger,
	}, nil
}

// Lookup queries the registry for businessID, which should already be normalized.
//
// It returns *UnavailableError when the registry cannot be reached or answers
// with a non-success status, and *MalformedResponseError when the body cannot
// be decoded. A well-formed answer without records is not an error: the
// Outcome then has Found set to false.
func (c *Client) Lookup(ctx context.Context, businessID string) (*Outcome, error) {
	requestURL, err := fetch.WithQuery(c.baseURL, url.Values{businessIDParam: {businessID}})
	if err != nil {
		return nil, &UnavailableError{BusinessID: businessID, Cause: err}
	}

	c.logger.InfoContext(ctx, "registry request", "business_id", businessID, "url", requestURL)
	start := time.Now()

	result, err := fetch.JSON(ctx, requestURL, c.options)
	if err != nil {
		unavailable := &UnavailableError{BusinessID: businessID, Cause: err}
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && !isSuccess(fetchErr.StatusCode) {
			unavailable.StatusCode = fetchErr.StatusCode
		}
		c.logger.WarnContext(ctx, "registry response classified",
			"business_id", businessID,
			"outcome", "unavailable",
			"status_code", unavailable.StatusCode,
			"duration", time.Since(start),
			"error", err)
		return nil, unavailable
	}

	c.dump(ctx, result.Body)

	body := StripBOM(result.Body)
	c.logger.DebugContext(ctx, "registry raw response", "business_id", businessID, "bytes", len(body))

	if c.schemaCheck {
		c.checkSchema(ctx, businessID, body)
	}

	resp, err := Decode(body)
	if err != nil {
		c.logger.WarnContext(ctx, "registry response classified",
			"business_id", businessID,
			"outcome", "malformed",
			"duration", time.Since(start),
			"error", err)
		return nil, err
	}

	outcome := &Outcome{BusinessID: businessID, Response: resp}
	if _, ok := resp.First(); ok {
		outcome.Found = true
		outcome.Company = Extract(resp)
	}

	c.logger.InfoContext(ctx, "registry response classified",
		"business_id", businessID,
		"outcome", outcomeLabel(outcome),
		"records", len(resp.Companies)+len(resp.Results),
		"duration", time.Since(start))
	return outcome, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

func outcomeLabel(o *Outcome) string {
	if o.Found {
		return "found"
	}
	return "not_found"
}

// dump writes the raw body to the configured debug file. Failures are logged only.
func (c *Client) dump(ctx context.Context, body []byte) {
	if c.dumpPath == "" {
		return
	}
	if err := os.WriteFile(c.dumpPath, body, 0o644); err != nil {
		c.logger.WarnContext(ctx, "failed to write registry dump", "path", c.dumpPath, "error", err)
		return
	}
	c.logger.DebugContext(ctx, "registry response dumped", "path", c.dumpPath)
}

// checkSchema reports schema drift in the registry document. It never fails the lookup.
func (c *Client) checkSchema(ctx context.Context, businessID string, body []byte) {
	err := schemas.ValidateBytes(schemafiles.RegistryResponse(), body)
	if err == nil {
		return
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, fieldErr := range validationErr.Errors {
			c.logger.WarnContext(ctx, "registry schema drift",
				"business_id", businessID,
				"field", fieldErr.Field,
				"message", fieldErr.Message)
		}
		return
	}
	c.logger.WarnContext(ctx, "registry schema check failed", "business_id", businessID, "error", err)
}
