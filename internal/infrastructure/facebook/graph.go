package facebook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/page"
)

const graphAPIBase = "https://graph.facebook.com/v18.0"

// GraphClient talks to the Facebook Graph API for pages, posts and
// insights. It implements page.GraphAPI and content.Publisher.
type GraphClient struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewGraphClient builds a Graph API client with the given request timeout.
func NewGraphClient(timeout time.Duration, log zerolog.Logger) *GraphClient {
	return &GraphClient{
		http: resty.New().SetBaseURL(graphAPIBase).SetTimeout(timeout),
		log:  log.With().Str("component", "facebook-graph").Logger(),
	}
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

type pageResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	FollowersCount int    `json:"followers_count"`
	Picture        struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
	AccessToken string `json:"access_token"`
}

// PageDetails fetches the current snapshot of one page.
func (c *GraphClient) PageDetails(ctx context.Context, pageID, accessToken string) (*page.Details, error) {
	var body pageResponse
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"fields":       "id,name,followers_count,picture{url},access_token",
		}).
		SetResult(&body).
		SetError(&apiErr).
		Get("/" + pageID)
	if err != nil {
		return nil, fmt.Errorf("graph page details: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("graph page details: %s", apiErr.Error.Message)
	}

	token := body.AccessToken
	if token == "" {
		token = accessToken
	}
	return &page.Details{
		FacebookPageID:  body.ID,
		Name:            body.Name,
		Followers:       body.FollowersCount,
		ProfileImageURL: body.Picture.Data.URL,
		AccessToken:     token,
	}, nil
}

// UserPages lists the pages the user token can manage.
func (c *GraphClient) UserPages(ctx context.Context, userAccessToken string) ([]page.Details, error) {
	var body struct {
		Data []pageResponse `json:"data"`
	}
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": userAccessToken,
			"fields":       "id,name,access_token,followers_count,picture{url}",
		}).
		SetResult(&body).
		SetError(&apiErr).
		Get("/me/accounts")
	if err != nil {
		return nil, fmt.Errorf("graph user pages: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("graph user pages: %s", apiErr.Error.Message)
	}

	pages := make([]page.Details, len(body.Data))
	for i, p := range body.Data {
		pages[i] = page.Details{
			FacebookPageID:  p.ID,
			Name:            p.Name,
			Followers:       p.FollowersCount,
			ProfileImageURL: p.Picture.Data.URL,
			AccessToken:     p.AccessToken,
		}
	}
	return pages, nil
}

// PublishPost publishes a message to the page feed and returns the post id.
// When imageURL is set the photo is attached via a url upload.
func (c *GraphClient) PublishPost(ctx context.Context, pageID, accessToken, message, imageURL string) (string, error) {
	form := map[string]string{
		"access_token": accessToken,
		"message":      message,
	}

	endpoint := fmt.Sprintf("/%s/feed", pageID)
	if imageURL != "" {
		endpoint = fmt.Sprintf("/%s/photos", pageID)
		form["url"] = imageURL
		form["caption"] = message
		delete(form, "message")
	}

	var body struct {
		ID     string `json:"id"`
		PostID string `json:"post_id"`
	}
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&body).
		SetError(&apiErr).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("graph publish: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("graph publish: %s", apiErr.Error.Message)
	}

	if body.PostID != "" {
		return body.PostID, nil
	}
	return body.ID, nil
}

// PageInsights fetches daily page metrics. Failures degrade to an empty
// result so callers can keep rendering dashboards.
func (c *GraphClient) PageInsights(ctx context.Context, pageID, accessToken string) (map[string]int, error) {
	var body struct {
		Data []struct {
			Name   string `json:"name"`
			Values []struct {
				Value int `json:"value"`
			} `json:"values"`
		} `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"metric":       "page_impressions,page_reach,page_engaged_users,page_fan_adds",
			"period":       "day",
		}).
		SetResult(&body).
		Get(fmt.Sprintf("/%s/insights", pageID))
	if err != nil || resp.IsError() {
		c.log.Warn().Err(err).Str("page_id", pageID).Msg("page insights unavailable")
		return map[string]int{}, nil
	}

	metrics := make(map[string]int, len(body.Data))
	for _, insight := range body.Data {
		if len(insight.Values) > 0 {
			metrics[insight.Name] = insight.Values[len(insight.Values)-1].Value
		}
	}
	return metrics, nil
}
