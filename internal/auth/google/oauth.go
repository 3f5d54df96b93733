package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Profile is the subset of the Google userinfo response the auth
// service needs.
type Profile struct {
	Email string
	Name  string
}

// Client exchanges an OAuth authorization code for the Google profile
// behind it. The SPA callback posts the code it received on redirect.
type Client struct {
	conf *oauth2.Config
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

// Configured reports whether OAuth credentials were provided.
func (c *Client) Configured() bool {
	return c.conf.ClientID != "" && c.conf.ClientSecret != ""
}

// Exchange trades the authorization code for tokens and fetches the
// userinfo document.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*Profile, error) {
	conf := *c.conf
	conf.RedirectURL = redirectURI

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange: %w", err)
	}

	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("google userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google userinfo: no email in response")
	}

	return &Profile{Email: info.Email, Name: info.Name}, nil
}
