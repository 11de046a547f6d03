package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/cache"
	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/aleccaputo/sanguine-web/internal/logger"
	"github.com/aleccaputo/sanguine-web/internal/metrics"
	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/utils"
)

const (
	priceCacheTTL = 15 * time.Minute // bulk snapshot moves constantly
	itemCacheTTL  = 24 * time.Hour   // item metadata barely changes
)

// PriceService resolves item IDs to display metadata and market prices. Item
// metadata comes from the official itemdb catalogue, prices from the wiki
// bulk snapshot; both sit behind TTL caches. Failed catalogue lookups are
// negatively cached so a dead item ID does not hammer the upstream.
type PriceService struct {
	wikiBaseURL   string
	itemdbBaseURL string
	http          *http.Client
	prices        *cache.Cache[*model.PricesResponse]
	items         *cache.Cache[*model.Item]
}

func NewPriceService(cfg *config.Config) *PriceService {
	return &PriceService{
		wikiBaseURL:   cfg.PricesBaseURL,
		itemdbBaseURL: cfg.ItemDBBaseURL,
		http:          &http.Client{Timeout: 10 * time.Second},
		prices:        cache.New[*model.PricesResponse]("prices", priceCacheTTL),
		items:         cache.New[*model.Item]("items", itemCacheTTL),
	}
}

// AllPrices returns the latest bulk price snapshot, refreshing it at most
// every fifteen minutes.
func (s *PriceService) AllPrices(ctx context.Context) (*model.PricesResponse, error) {
	if prices, ok := s.prices.Get("latest"); ok {
		return prices, nil
	}

	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("wiki_prices").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.wikiBaseURL+"/latest", nil)
	if err != nil {
		return nil, fmt.Errorf("could not build price request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("wiki_prices").Inc()
		return nil, fmt.Errorf("price fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("wiki_prices").Inc()
		return nil, fmt.Errorf("price API returned %d", resp.StatusCode)
	}

	var prices model.PricesResponse
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("could not decode price snapshot: %w", err)
	}

	s.prices.Set("latest", &prices)
	return &prices, nil
}

// FetchItem resolves item metadata from the itemdb catalogue. Any failure is
// cached as nil for the full item TTL and reported as nil, never an error:
// missing metadata only degrades the display.
func (s *PriceService) FetchItem(ctx context.Context, itemID int64) *model.Item {
	key := strconv.FormatInt(itemID, 10)
	if item, ok := s.items.Get(key); ok {
		return item
	}

	item := s.fetchItemDirect(ctx, itemID)
	s.items.Set(key, item)
	return item
}

func (s *PriceService) fetchItemDirect(ctx context.Context, itemID int64) *model.Item {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("itemdb").Observe(time.Since(start).Seconds())
	}()

	url := fmt.Sprintf("%s/catalogue/detail.json?item=%d", s.itemdbBaseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("itemdb").Inc()
		logger.Warning("itemdb fetch failed for %d: %v", itemID, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("itemdb").Inc()
		return nil
	}

	// The itemdb endpoint answers 200 with an empty body for unknown items.
	body, err := io.ReadAll(resp.Body)
	if err != nil || strings.TrimSpace(string(body)) == "" {
		return nil
	}

	var detail struct {
		Item struct {
			Name string `json:"name"`
			Icon string `json:"icon"`
		} `json:"item"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		logger.Warning("could not decode itemdb response for %d: %v", itemID, err)
		return nil
	}
	if detail.Item.Name == "" || detail.Item.Icon == "" {
		return nil
	}

	return &model.Item{ID: itemID, Name: detail.Item.Name, Icon: detail.Item.Icon}
}

// PriceFor picks an item's GP value out of a snapshot: high price first, low
// as fallback, zero when the snapshot does not know the item.
func PriceFor(prices *model.PricesResponse, itemID int64) int64 {
	if prices == nil {
		return 0
	}
	entry, ok := prices.Data[strconv.FormatInt(itemID, 10)]
	if !ok {
		return 0
	}
	if entry.High != nil {
		return *entry.High
	}
	if entry.Low != nil {
		return *entry.Low
	}
	return 0
}

// ResolveItem produces the full display metadata for an item. Untradeable
// items resolve from the static table without touching the network; anything
// else combines the catalogue lookup with the price snapshot. A nil result
// means the caller should fall back to showing the raw ID.
func (s *PriceService) ResolveItem(ctx context.Context, itemID int64) *model.Item {
	if name, ok := utils.UntradeableItems[itemID]; ok {
		return &model.Item{ID: itemID, Name: utils.ToTitleCase(name)}
	}

	item := s.FetchItem(ctx, itemID)
	if item == nil {
		return nil
	}

	resolved := *item
	if prices, err := s.AllPrices(ctx); err == nil {
		resolved.Price = PriceFor(prices, itemID)
	} else {
		logger.Warning("price snapshot unavailable, serving %d without price: %v", itemID, err)
	}
	return &resolved
}
