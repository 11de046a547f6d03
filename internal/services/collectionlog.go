package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/aleccaputo/sanguine-web/internal/logger"
	"github.com/aleccaputo/sanguine-web/internal/metrics"
	model "github.com/aleccaputo/sanguine-web/internal/models"
)

// CollectionLogClient reads recent item unlocks from collectionlog.net. The
// service is flaky; a failed lookup is not an error, member pages just omit
// the section.
type CollectionLogClient struct {
	baseURL string
	http    *http.Client
}

func NewCollectionLogClient(cfg *config.Config) *CollectionLogClient {
	return &CollectionLogClient{
		baseURL: cfg.CollectionLogBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RecentItems fetches a member's latest collection log unlocks. Returns
// nil, nil when the upstream cannot serve the user.
func (c *CollectionLogClient) RecentItems(ctx context.Context, username string) (*model.RecentCollectionLog, error) {
	if username == "" {
		return nil, nil
	}

	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("collection_log").Observe(time.Since(start).Seconds())
	}()

	requestURL := fmt.Sprintf("%s/items/recent/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build collection log request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("collection_log").Inc()
		logger.Warning("unable to fetch collection log items for %s: %v", username, err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("collection_log").Inc()
		logger.Warning("unable to fetch collection log items for %s: status %d", username, resp.StatusCode)
		return nil, nil
	}

	var payload struct {
		Items []model.CollectionLogItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warning("could not decode collection log response for %s: %v", username, err)
		return nil, nil
	}

	return &model.RecentCollectionLog{
		Nickname:    username,
		RecentItems: payload.Items,
	}, nil
}
