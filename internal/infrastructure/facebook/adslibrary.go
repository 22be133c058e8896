package facebook

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pagepilot/pagepilot/internal/domain/adintel"
)

const adsArchiveURL = "https://graph.facebook.com/v19.0/ads_archive"

// AdsLibraryClient searches the Facebook Ads Library. Without an access
// token it serves generated demo data so the feature stays explorable.
type AdsLibraryClient struct {
	accessToken string
	http        *resty.Client
	log         zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAdsLibraryClient builds an ads library client. accessToken may be
// empty. rng may be nil, in which case a time-seeded source is used.
func NewAdsLibraryClient(accessToken string, timeout time.Duration, rng *rand.Rand, log zerolog.Logger) *AdsLibraryClient {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AdsLibraryClient{
		accessToken: accessToken,
		http:        resty.New().SetTimeout(timeout),
		log:         log.With().Str("component", "ads-library").Logger(),
		rng:         rng,
	}
}

type archiveAd struct {
	ID                  string   `json:"id"`
	AdCreativeBodies    []string `json:"ad_creative_bodies"`
	AdDeliveryStartTime string   `json:"ad_delivery_start_time"`
	AdDeliveryStopTime  string   `json:"ad_delivery_stop_time"`
	PageID              string   `json:"page_id"`
	PageName            string   `json:"page_name"`
	Impressions         *struct {
		LowerBound int `json:"lower_bound,string"`
		UpperBound int `json:"upper_bound,string"`
	} `json:"impressions"`
	Spend *struct {
		LowerBound int `json:"lower_bound,string"`
		UpperBound int `json:"upper_bound,string"`
	} `json:"spend"`
}

// SearchAds queries the ads archive for the given search terms.
func (c *AdsLibraryClient) SearchAds(ctx context.Context, searchTerms string, limit int) ([]adintel.Ad, error) {
	if c.accessToken == "" {
		return c.demoAds(searchTerms, limit), nil
	}

	var body struct {
		Data []archiveAd `json:"data"`
	}
	var apiErr graphError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":         searchTerms,
			"ad_type":              "ALL",
			"ad_reached_countries": "US",
			"limit":                strconv.Itoa(limit),
			"access_token":         c.accessToken,
			"fields":               "id,ad_creative_bodies,ad_delivery_start_time,ad_delivery_stop_time,page_id,page_name,impressions,spend",
		}).
		SetResult(&body).
		SetError(&apiErr).
		Get(adsArchiveURL)
	if err != nil {
		return nil, fmt.Errorf("ads archive: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ads archive: %s", apiErr.Error.Message)
	}

	ads := make([]adintel.Ad, 0, len(body.Data))
	for _, raw := range body.Data {
		ads = append(ads, archiveToAd(raw))
	}
	return ads, nil
}

func archiveToAd(raw archiveAd) adintel.Ad {
	ad := adintel.Ad{
		AdID:     raw.ID,
		PageID:   raw.PageID,
		PageName: raw.PageName,
		IsActive: raw.AdDeliveryStopTime == "",
		Spend:    decimal.Zero,
	}
	if len(raw.AdCreativeBodies) > 0 {
		ad.Content = raw.AdCreativeBodies[0]
	}
	if t, err := time.Parse(time.RFC3339, raw.AdDeliveryStartTime); err == nil {
		ad.StartDate = &t
	}
	if t, err := time.Parse(time.RFC3339, raw.AdDeliveryStopTime); err == nil {
		ad.EndDate = &t
	}
	if raw.Impressions != nil {
		ad.Impressions = raw.Impressions.LowerBound
	}
	if raw.Spend != nil {
		ad.Spend = decimal.NewFromInt(int64(raw.Spend.LowerBound))
	}
	return ad
}

// demoAds fabricates a plausible result set for the search terms.
func (c *AdsLibraryClient) demoAds(searchTerms string, limit int) []adintel.Ad {
	c.mu.Lock()
	defer c.mu.Unlock()

	category := adintel.Categorize(searchTerms)
	count := c.rng.Intn(20) + 5
	if count > limit {
		count = limit
	}

	now := time.Now()
	ads := make([]adintel.Ad, count)
	for i := range ads {
		start := now.AddDate(0, 0, -c.rng.Intn(30))
		active := c.rng.Float64() > 0.3
		ad := adintel.Ad{
			AdID:     fmt.Sprintf("demo_ad_%d_%d", now.UnixMilli(), i),
			PageID:   fmt.Sprintf("page_%d", c.rng.Intn(1000)),
			PageName: fmt.Sprintf("%s Company %d", category, i+1),
			Content: fmt.Sprintf(
				"Discover amazing %s solutions that will transform your business. Join thousands of satisfied customers today!",
				searchTerms),
			Category:       category,
			StartDate:      &start,
			IsActive:       active,
			Spend:          decimal.NewFromInt(int64(c.rng.Intn(5000) + 1000)),
			Impressions:    c.rng.Intn(100000) + 50000,
			TargetAudience: fmt.Sprintf(`{"estimated_size":{"lower_bound":%d}}`, c.rng.Intn(50000)+10000),
		}
		if !active {
			end := start.AddDate(0, 0, c.rng.Intn(15)+1)
			ad.EndDate = &end
		}
		ads[i] = ad
	}
	return ads
}
