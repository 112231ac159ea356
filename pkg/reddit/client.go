package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-intake-backend/pkg/logger"
)

// ErrNotVerified is the single failure result of a verification attempt.
// Missing credentials, a provider outage, and a nonexistent account all
// collapse into it: callers must not be able to tell "we broke" apart from
// "you typed a bad handle".
var ErrNotVerified = errors.New("reddit: account does not exist or could not be verified")

const (
	defaultTokenURL   = "https://www.reddit.com/api/v1/access_token"
	defaultAPIBaseURL = "https://oauth.reddit.com"

	// Reddit rejects requests carrying generic library user agents.
	defaultUserAgent = "go-intake-backend/1.0 (applicant intake verification)"
)

// Config holds the Reddit application credentials and optional overrides.
// TokenURL, APIBaseURL and HTTPClient exist so tests can point the client at
// a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIBaseURL   string
	UserAgent    string
	HTTPClient   *http.Client
}

// Client verifies Reddit account existence through the application-only
// client-credentials OAuth flow.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	apiBaseURL   string
	userAgent    string
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		apiBaseURL:   cfg.APIBaseURL,
		userAgent:    cfg.UserAgent,
		httpClient:   cfg.HTTPClient,
	}
	if c.tokenURL == "" {
		c.tokenURL = defaultTokenURL
	}
	if c.apiBaseURL == "" {
		c.apiBaseURL = defaultAPIBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.httpClient == nil {
		// Verification sits on the interactive submit path, keep it short.
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return c
}

// VerifyUser confirms that the named Reddit account exists. Any failure,
// whatever its cause, returns ErrNotVerified.
func (c *Client) VerifyUser(ctx context.Context, username string) error {
	// Fail closed: without credentials we must neither pass every account
	// nor hit the provider with an empty basic-auth header.
	if c.clientID == "" || c.clientSecret == "" {
		logger.Log.Warn("Reddit credentials not configured, refusing verification", "username", username)
		return ErrNotVerified
	}

	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		logger.Log.Warn("Reddit token request failed", "error", err)
		return ErrNotVerified
	}

	if err := c.fetchUserAbout(ctx, token, username); err != nil {
		logger.Log.Warn("Reddit user lookup failed", "username", username, "error", err)
		return ErrNotVerified
	}

	return nil
}

func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token response contained no access_token")
	}
	return payload.AccessToken, nil
}

func (c *Client) fetchUserAbout(ctx context.Context, token, username string) error {
	aboutURL := fmt.Sprintf("%s/user/%s/about", c.apiBaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, aboutURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	// Success needs more than a 2xx: the payload must actually carry an
	// identity for the requested handle.
	var payload struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return fmt.Errorf("decoding user response: %w", err)
	}
	if payload.Data.Name == "" {
		return errors.New("user response contained no identity")
	}
	return nil
}
