package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every environment-derived setting for the service. Upstream
// base URLs are configurable so tests can point the clients at local fakes.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	WOMBaseURL string
	WOMAPIKey  string
	WOMGroupID int

	PricesBaseURL        string
	ItemDBBaseURL        string
	CollectionLogBaseURL string

	// Competitions pinned to the top of the events page (bingo boards run
	// outside the normal WOM group rotation).
	PinnedCompetitionIDs []int

	AllowedOrigin string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", ""),
		DBName:               getEnv("DB_NAME", "sanguine"),
		WOMBaseURL:           getEnv("WOM_BASE_URL", "https://api.wiseoldman.net/v2"),
		WOMAPIKey:            getEnv("WOM_API_KEY", ""),
		PricesBaseURL:        getEnv("PRICES_BASE_URL", "https://prices.runescape.wiki/api/v1/osrs"),
		ItemDBBaseURL:        getEnv("ITEMDB_BASE_URL", "https://secure.runescape.com/m=itemdb_oldschool/api"),
		CollectionLogBaseURL: getEnv("COLLECTION_LOG_BASE_URL", "https://api.collectionlog.net"),
		AllowedOrigin:        getEnv("ALLOWED_ORIGIN", "*"),
	}

	groupID, err := strconv.Atoi(getEnv("WOM_GROUP_ID", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid WOM_GROUP_ID: %w", err)
	}
	cfg.WOMGroupID = groupID

	pinned, err := parseIDList(getEnv("PINNED_COMPETITION_IDS", "79514,46594"))
	if err != nil {
		return nil, fmt.Errorf("invalid PINNED_COMPETITION_IDS: %w", err)
	}
	cfg.PinnedCompetitionIDs = pinned

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
