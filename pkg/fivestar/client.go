// Package fivestar is a client for the hosted FiveStar Support
// customer-feedback API. It wraps the REST endpoints for customer identity
// (generate, register, verify) and feedback submission behind typed methods
// and normalizes every remote failure into an APIError.
package fivestar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ryanw3b3r/fivestar-sdk-go/logger"
)

const (
	defaultBaseURL = "https://fivestar.support"
	defaultTimeout = 30 * time.Second
)

// Client talks to the FiveStar Support API on behalf of one integrating
// application identified by its client ID. All methods perform at most one
// round trip; there are no retries. The client is safe for concurrent use
// since all per-call state is local to the call. Call Close exactly once when
// the client is no longer needed.
type Client struct {
	clientID   string
	baseURL    string
	device     DeviceInfo
	httpClient *http.Client
}

// Option is a function that configures the client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. A trailing slash is
// stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout overrides the default 30 second request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. It replaces the timeout
// configured so far, so combine it with WithTimeout in that order if both are
// needed.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithDeviceInfo attaches device metadata sent as X-FiveStar-* headers on
// every request.
func WithDeviceInfo(info DeviceInfo) Option {
	return func(c *Client) {
		c.device = info
	}
}

// NewClient creates a client for the given client ID.
func NewClient(clientID string, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("clientID is required")
	}

	c := &Client{
		clientID: clientID,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")

	return c, nil
}

// Close releases idle connections held by the underlying transport. The
// client must not be used after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ListResponseTypes returns the feedback categories configured for this
// client, in server order. A response without a types field yields an empty
// slice, not an error.
func (c *Client) ListResponseTypes(ctx context.Context) ([]ResponseType, error) {
	logger.GetLogger().Debugw("Listing response types", "clientId", c.clientID)

	var resp listResponseTypesResponse
	if err := c.get(ctx, "/api/responses/types", &resp); err != nil {
		return nil, err
	}

	if resp.Types == nil {
		return []ResponseType{}, nil
	}
	return resp.Types, nil
}

// GenerateCustomerID asks the server to issue a new customer identifier for
// this client.
func (c *Client) GenerateCustomerID(ctx context.Context) (*GenerateCustomerIDResult, error) {
	logger.GetLogger().Debugw("Generating customer ID", "clientId", c.clientID)

	var result GenerateCustomerIDResult
	err := c.post(ctx, "/api/customers/generate", generateCustomerIDRequest{ClientID: c.clientID}, &result)
	if err != nil {
		return nil, err
	}

	// The identifier, expiry and device binding are all mandatory in the
	// response shape.
	if result.CustomerID == "" || result.ExpiresAt == "" || result.DeviceID == "" {
		return nil, newDeserializeError()
	}

	return &result, nil
}

// RegisterCustomer registers a previously generated customer identifier,
// optionally attaching profile fields. The result's Customer is nil when the
// server omitted it or sent null.
func (c *Client) RegisterCustomer(ctx context.Context, customerID string, opts *RegisterCustomerOptions) (*RegisterCustomerResult, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customerID is required")
	}

	reqBody := registerCustomerRequest{
		ClientID:   c.clientID,
		CustomerID: customerID,
	}
	if opts != nil {
		reqBody.Email = optionalString(opts.Email)
		reqBody.Name = optionalString(opts.Name)
	}

	log := logger.GetLogger()
	log.Debugw("Registering customer",
		"customerId", logger.MaskSensitiveString(customerID, 4, 2))
	if opts != nil && opts.Email != "" {
		log.Debugw("Registration includes profile", "email", logger.MaskEmail(opts.Email))
	}

	var result RegisterCustomerResult
	if err := c.post(ctx, "/api/customers", reqBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// VerifyCustomer checks whether a customer identifier is still valid. A
// failed verification is a normal outcome: any transport or API failure is
// converted into a result with Valid set to false rather than returned as an
// error. Caller cancellation is the exception and still surfaces as the
// context error.
func (c *Client) VerifyCustomer(ctx context.Context, customerID string) (*VerifyCustomerResult, error) {
	logger.GetLogger().Debugw("Verifying customer",
		"customerId", logger.MaskSensitiveString(customerID, 4, 2))

	var result VerifyCustomerResult
	err := c.post(ctx, "/api/customers/verify", verifyCustomerRequest{
		ClientID:   c.clientID,
		CustomerID: customerID,
	}, &result)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		logger.GetLogger().Warnw("Customer verification failed", "error", err)
		return &VerifyCustomerResult{Valid: false, Message: "Verification failed"}, nil
	}

	return &result, nil
}

// SubmitResponse submits one unit of customer feedback.
func (c *Client) SubmitResponse(ctx context.Context, opts SubmitResponseOptions) (*SubmitResponseResult, error) {
	if err := validateSubmitOptions(opts); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	logger.GetLogger().Debugw("Submitting response",
		"customerId", logger.MaskSensitiveString(opts.CustomerID, 4, 2),
		"typeId", opts.TypeID)

	reqBody := submitResponseRequest{
		ClientID:       c.clientID,
		CustomerID:     opts.CustomerID,
		Title:          opts.Title,
		Description:    opts.Description,
		ResponseTypeID: opts.TypeID,
		CustomerEmail:  optionalString(opts.Email),
		CustomerName:   optionalString(opts.Name),
	}

	var result SubmitResponseResult
	if err := c.post(ctx, "/api/responses", reqBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// PublicURL returns the public feedback page URL for this client, under a
// locale segment when locale is non-empty. No network call is made.
func (c *Client) PublicURL(locale string) string {
	if locale == "" {
		return fmt.Sprintf("%s/c/%s", c.baseURL, c.clientID)
	}
	return fmt.Sprintf("%s/%s/c/%s", c.baseURL, locale, c.clientID)
}

func validateSubmitOptions(opts SubmitResponseOptions) error {
	if opts.CustomerID == "" {
		return fmt.Errorf("customerId is required")
	}
	if opts.Title == "" {
		return fmt.Errorf("title is required")
	}
	if opts.Description == "" {
		return fmt.Errorf("description is required")
	}
	if opts.TypeID == "" {
		return fmt.Errorf("typeId is required")
	}
	return nil
}

// setCommonHeaders attaches the headers sent on every request: the Accept
// header, a correlation ID, and the configured device fingerprint.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if c.device.Platform != "" {
		req.Header.Set("X-FiveStar-Platform", c.device.Platform)
	}
	if c.device.AppVersion != "" {
		req.Header.Set("X-FiveStar-App-Version", c.device.AppVersion)
	}
	if c.device.DeviceModel != "" {
		req.Header.Set("X-FiveStar-Device-Model", c.device.DeviceModel)
	}
	if c.device.OSVersion != "" {
		req.Header.Set("X-FiveStar-OS-Version", c.device.OSVersion)
	}
}

// get issues a GET request and decodes the 200 response body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.GetLogger().Warnw("FiveStar API returned non-OK status",
			"path", path, "statusCode", resp.StatusCode)
		return newStatusError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.GetLogger().Errorw("Failed to decode FiveStar response",
			"path", path, "error", err)
		return newDeserializeError()
	}
	return nil
}

// post serializes payload as JSON, issues a POST request and decodes the 200
// response body into out. Non-200 responses are turned into an APIError whose
// message is extracted from the error body when possible.
func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := apiErrorFromBody(resp.StatusCode, body)
		logger.GetLogger().Warnw("FiveStar API returned non-OK status",
			"path", path, "statusCode", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.GetLogger().Errorw("Failed to decode FiveStar response",
			"path", path, "error", err)
		return newDeserializeError()
	}
	return nil
}
