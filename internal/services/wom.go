package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/cache"
	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/aleccaputo/sanguine-web/internal/metrics"
	model "github.com/aleccaputo/sanguine-web/internal/models"
)

const (
	womMemberCacheTTL = 5 * time.Minute
	userAgent         = "sanguine-osrs.com - Clan Website (sanguine.pvm@gmail.com)"
)

// WOMClient talks to the Wise Old Man competition-tracking API. All reads;
// the clan group itself is managed elsewhere.
type WOMClient struct {
	baseURL string
	apiKey  string
	groupID int
	http    *http.Client
	members *cache.Cache[[]model.GroupMembership]
}

func NewWOMClient(cfg *config.Config) *WOMClient {
	return &WOMClient{
		baseURL: cfg.WOMBaseURL,
		apiKey:  cfg.WOMAPIKey,
		groupID: cfg.WOMGroupID,
		http:    &http.Client{Timeout: 10 * time.Second},
		members: cache.New[[]model.GroupMembership]("wom_members", womMemberCacheTTL),
	}
}

func (c *WOMClient) getJSON(ctx context.Context, path string, dest interface{}) error {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("wom").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not build WOM request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("wom").Inc()
		return fmt.Errorf("WOM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("wom").Inc()
		return fmt.Errorf("WOM returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("could not decode WOM response: %w", err)
	}
	return nil
}

// GetGroupCompetitions lists the clan group's competitions, newest first.
func (c *WOMClient) GetGroupCompetitions(ctx context.Context) ([]model.CompetitionListItem, error) {
	var comps []model.CompetitionListItem
	if err := c.getJSON(ctx, fmt.Sprintf("/groups/%d/competitions", c.groupID), &comps); err != nil {
		return nil, err
	}
	return comps, nil
}

// GetCompetitionDetails fetches one competition with its full participant
// progress list.
func (c *WOMClient) GetCompetitionDetails(ctx context.Context, id int) (*model.Competition, error) {
	var comp model.Competition
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d", id), &comp); err != nil {
		return nil, err
	}
	return &comp, nil
}

// GetGroupMembers fetches the clan's membership list, cached for five
// minutes. Any request may refresh the entry; replacements are whole-entry.
func (c *WOMClient) GetGroupMembers(ctx context.Context) ([]model.GroupMembership, error) {
	if members, ok := c.members.Get("members"); ok {
		return members, nil
	}

	var group struct {
		Memberships []model.GroupMembership `json:"memberships"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/groups/%d", c.groupID), &group); err != nil {
		return nil, err
	}

	c.members.Set("members", group.Memberships)
	return group.Memberships, nil
}
