package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenProvider holds the current client-credentials bearer token and its
// expiry. EnsureValid is the only way to read the token: it returns the
// cached value while it is still valid and fetches a fresh one synchronously
// otherwise. The mutex covers the whole check-then-fetch so concurrent
// callers hitting an expired token trigger exactly one refresh.
type TokenProvider struct {
	accountsURL  string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenProvider(accountsURL, clientID, clientSecret string) *TokenProvider {
	return &TokenProvider{
		accountsURL:  accountsURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// EnsureValid returns a bearer token in "Bearer <value>" form, fetching a
// new one when the cached token is missing or expired.
func (p *TokenProvider) EnsureValid(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.expiry.After(time.Now()) {
		return p.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.accountsURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request failed: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned HTTP %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var tokenData struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenData); err != nil {
		return "", fmt.Errorf("%w: failed to parse token response: %v", ErrCatalogUnavailable, err)
	}

	p.token = fmt.Sprintf("%s %s", tokenData.TokenType, tokenData.AccessToken)
	p.expiry = time.Now().Add(time.Duration(tokenData.ExpiresIn) * time.Second)

	return p.token, nil
}
