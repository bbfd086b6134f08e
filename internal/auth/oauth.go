package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// ErrExternalAuth wraps every failure talking to an identity provider.
var ErrExternalAuth = errors.New("auth: external authentication failed")

// ExternalIdentity is the verified profile returned by a provider.
type ExternalIdentity struct {
	Provider    models.AuthProvider
	ExternalID  string
	Email       string
	DisplayName string
	AvatarURL   string
}

// Provider turns a client-supplied credential (ID token or authorization
// code) into a verified identity.
type Provider interface {
	Exchange(ctx context.Context, credential string) (*ExternalIdentity, error)
}

// Providers selects the implementation by provider tag.
type Providers map[models.AuthProvider]Provider

type OAuthClientConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

const (
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v3/userinfo"
	githubAPIURL       = "https://api.github.com"
)

var providerHTTPClient = &http.Client{Timeout: 10 * time.Second}

// GoogleProvider accepts either a Google ID token (verified through the
// tokeninfo endpoint) or an authorization code.
type GoogleProvider struct {
	config       *oauth2.Config
	tokenInfoURL string
	userInfoURL  string
}

func NewGoogleProvider(cfg OAuthClientConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		tokenInfoURL: googleTokenInfoURL,
		userInfoURL:  googleUserInfoURL,
	}
}

type googleProfile struct {
	Audience      string   `json:"aud"`
	Subject       string   `json:"sub"`
	Email         string   `json:"email"`
	EmailVerified flexBool `json:"email_verified"`
	Name          string   `json:"name"`
	Picture       string   `json:"picture"`
}

func (p *GoogleProvider) Exchange(ctx context.Context, credential string) (*ExternalIdentity, error) {
	var (
		profile googleProfile
		err     error
	)
	if isJWT(credential) {
		err = p.verifyIDToken(ctx, credential, &profile)
	} else {
		err = p.exchangeCode(ctx, credential, &profile)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: google: %v", ErrExternalAuth, err)
	}

	if profile.Subject == "" || profile.Email == "" {
		return nil, fmt.Errorf("%w: google: profile missing subject or email", ErrExternalAuth)
	}
	if !profile.EmailVerified {
		return nil, fmt.Errorf("%w: google: email not verified", ErrExternalAuth)
	}

	return &ExternalIdentity{
		Provider:    models.ProviderGoogle,
		ExternalID:  profile.Subject,
		Email:       profile.Email,
		DisplayName: profile.Name,
		AvatarURL:   profile.Picture,
	}, nil
}

func (p *GoogleProvider) verifyIDToken(ctx context.Context, idToken string, profile *googleProfile) error {
	endpoint := p.tokenInfoURL + "?" + url.Values{"id_token": {idToken}}.Encode()
	if err := getJSON(ctx, providerHTTPClient, endpoint, profile); err != nil {
		return err
	}
	if profile.Audience != p.config.ClientID {
		return errors.New("id token audience mismatch")
	}
	return nil
}

func (p *GoogleProvider) exchangeCode(ctx context.Context, code string, profile *googleProfile) error {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging code: %w", err)
	}
	return getJSON(ctx, p.config.Client(ctx, token), p.userInfoURL, profile)
}

// GitHubProvider completes the authorization code flow and reads the profile
// through the REST API.
type GitHubProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewGitHubProvider(cfg OAuthClientConfig) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		apiURL: githubAPIURL,
	}
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*ExternalIdentity, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: github: exchanging code: %v", ErrExternalAuth, err)
	}
	client := p.config.Client(ctx, token)

	var user githubUser
	if err := getJSON(ctx, client, p.apiURL+"/user", &user); err != nil {
		return nil, fmt.Errorf("%w: github: %v", ErrExternalAuth, err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("%w: github: invalid user", ErrExternalAuth)
	}

	// The profile email is empty when the user keeps it private.
	email := user.Email
	if email == "" {
		var emails []githubEmail
		if err := getJSON(ctx, client, p.apiURL+"/user/emails", &emails); err != nil {
			return nil, fmt.Errorf("%w: github: %v", ErrExternalAuth, err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return nil, fmt.Errorf("%w: github: no verified primary email", ErrExternalAuth)
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &ExternalIdentity{
		Provider:    models.ProviderGitHub,
		ExternalID:  strconv.FormatInt(user.ID, 10),
		Email:       email,
		DisplayName: name,
		AvatarURL:   user.AvatarURL,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s returned status %d", req.URL.Path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func isJWT(credential string) bool {
	return strings.Count(credential, ".") == 2
}

// flexBool decodes both JSON booleans and the "true"/"false" strings
// Google's tokeninfo endpoint returns.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %s", data)
	}
	*b = flexBool(v)
	return nil
}
