package facebook

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const oauthDialogBase = "https://www.facebook.com/v18.0/dialog/oauth"

// oauthScopes covers page management, messaging, insights and ads reading.
var oauthScopes = []string{
	"pages_manage_posts",
	"pages_read_engagement",
	"pages_read_user_content",
	"pages_show_list",
	"pages_messaging",
	"pages_messaging_subscriptions",
	"read_insights",
	"pages_manage_metadata",
	"ads_read",
	"email",
	"public_profile",
}

// OAuthClient drives the Facebook login code exchange.
type OAuthClient struct {
	appID       string
	appSecret   string
	redirectURL string
	http        *resty.Client
}

// NewOAuthClient builds an OAuth client from the app credentials.
func NewOAuthClient(appID, appSecret, redirectURL string, timeout time.Duration) *OAuthClient {
	return &OAuthClient{
		appID:       appID,
		appSecret:   appSecret,
		redirectURL: redirectURL,
		http:        resty.New().SetBaseURL(graphAPIBase).SetTimeout(timeout),
	}
}

// Configured reports whether app credentials are present.
func (c *OAuthClient) Configured() bool {
	return c.appID != "" && c.appSecret != ""
}

// AuthURL returns the login dialog URL for the given CSRF state.
func (c *OAuthClient) AuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("redirect_uri", c.redirectURL)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(oauthScopes, ","))
	if state != "" {
		params.Set("state", state)
	}
	return oauthDialogBase + "?" + params.Encode()
}

// Token is the OAuth access token response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeCode trades an authorization code for a short-lived user token.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	var token Token
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client_id":     c.appID,
			"client_secret": c.appSecret,
			"redirect_uri":  c.redirectURL,
			"code":          code,
		}).
		SetResult(&token).
		SetError(&apiErr).
		Get("/oauth/access_token")
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oauth code exchange: %s", apiErr.Error.Message)
	}
	return &token, nil
}

// LongLivedToken upgrades a short-lived token to a roughly 60 day one.
func (c *OAuthClient) LongLivedToken(ctx context.Context, shortLivedToken string) (*Token, error) {
	var token Token
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type":        "fb_exchange_token",
			"client_id":         c.appID,
			"client_secret":     c.appSecret,
			"fb_exchange_token": shortLivedToken,
		}).
		SetResult(&token).
		SetError(&apiErr).
		Get("/oauth/access_token")
	if err != nil {
		return nil, fmt.Errorf("oauth long lived token: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oauth long lived token: %s", apiErr.Error.Message)
	}
	return &token, nil
}
