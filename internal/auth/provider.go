package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrNotSignedIn means no usable session exists: never signed in, signed
// out, or the refresh token was rejected.
var ErrNotSignedIn = errors.New("auth: not signed in")

// Provider talks to the external identity service over JSON/HTTP and
// caches the current token set, persisting it through an optional Store.
type Provider struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	store      *Store
	log        *slog.Logger
	now        func() time.Time

	mu     sync.Mutex
	tokens TokenSet
	loaded bool
}

// Compile-time check: Provider satisfies TokenSource.
var _ TokenSource = (*Provider)(nil)

// NewProvider creates a client for the identity service. store may be nil,
// in which case the session lives only in memory.
func NewProvider(baseURL, clientID string, store *Store, log *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
		log:        log,
		now:        time.Now,
	}
}

// tokenResponse is the provider's token grant payload.
type tokenResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

func (p *Provider) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("auth: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("auth: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth: %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("auth: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth: %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("auth: decoding %s response: %w", path, err)
	}
	return nil
}

func (p *Provider) setTokens(tr tokenResponse) (TokenSet, error) {
	ts := TokenSet{
		IDToken:      tr.IDToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    p.now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}
	p.tokens = ts
	p.loaded = true
	if p.store != nil {
		if err := p.store.Save(ts); err != nil {
			return ts, fmt.Errorf("auth: persisting session: %w", err)
		}
	}
	return ts, nil
}

// SignIn exchanges credentials for a token set.
func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	var tr tokenResponse
	err := p.post(ctx, "/sign-in", map[string]string{
		"clientId": p.clientID,
		"email":    email,
		"password": password,
	}, &tr)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err = p.setTokens(tr)
	return err
}

// SignUp registers a new account. Most deployments then require a
// confirmation code sent to the email address.
func (p *Provider) SignUp(ctx context.Context, email, password string) error {
	return p.post(ctx, "/sign-up", map[string]string{
		"clientId": p.clientID,
		"email":    email,
		"password": password,
	}, nil)
}

// ConfirmSignUp confirms a registration with the emailed code.
func (p *Provider) ConfirmSignUp(ctx context.Context, email, code string) error {
	return p.post(ctx, "/confirm", map[string]string{
		"clientId": p.clientID,
		"email":    email,
		"code":     code,
	}, nil)
}

// ResendCode requests a fresh confirmation code.
func (p *Provider) ResendCode(ctx context.Context, email string) error {
	return p.post(ctx, "/resend", map[string]string{
		"clientId": p.clientID,
		"email":    email,
	}, nil)
}

// SignOut revokes the refresh token and clears local session state. Local
// state is cleared even when revocation fails.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	refresh := p.tokens.RefreshToken
	p.tokens = TokenSet{}
	p.loaded = true
	p.mu.Unlock()

	if p.store != nil {
		if err := p.store.Clear(); err != nil {
			return fmt.Errorf("auth: clearing session: %w", err)
		}
	}
	if refresh == "" {
		return nil
	}
	if err := p.post(ctx, "/sign-out", map[string]string{
		"clientId":     p.clientID,
		"refreshToken": refresh,
	}, nil); err != nil {
		p.log.Warn("sign-out revocation failed", "error", err)
	}
	return nil
}

// Session returns a valid token set, refreshing when the ID token is about
// to expire. Returns ErrNotSignedIn when no session exists or the refresh
// is rejected.
func (p *Provider) Session(ctx context.Context) (TokenSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		if p.store != nil {
			ts, ok, err := p.store.Load()
			if err != nil {
				return TokenSet{}, fmt.Errorf("auth: loading session: %w", err)
			}
			if ok {
				p.tokens = ts
			}
		}
		p.loaded = true
	}

	if p.tokens.Valid(p.now()) {
		return p.tokens, nil
	}
	if p.tokens.RefreshToken == "" {
		return TokenSet{}, ErrNotSignedIn
	}

	var tr tokenResponse
	err := p.post(ctx, "/refresh", map[string]string{
		"clientId":     p.clientID,
		"refreshToken": p.tokens.RefreshToken,
	}, &tr)
	if err != nil {
		p.log.Warn("token refresh failed", "error", err)
		return TokenSet{}, ErrNotSignedIn
	}
	// Providers commonly omit the refresh token on refresh grants.
	if tr.RefreshToken == "" {
		tr.RefreshToken = p.tokens.RefreshToken
	}
	return p.setTokens(tr)
}

// IDToken implements TokenSource.
func (p *Provider) IDToken(ctx context.Context) (string, error) {
	ts, err := p.Session(ctx)
	if err != nil {
		return "", err
	}
	return ts.IDToken, nil
}

// SignedIn reports whether a usable session currently exists.
func (p *Provider) SignedIn(ctx context.Context) bool {
	_, err := p.Session(ctx)
	return err == nil
}
