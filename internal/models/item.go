package model

// Item is resolved OSRS item metadata. Price is the latest high price, or the
// low price when no high is known, in GP.
type Item struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Price int64  `json:"price,omitempty"`
}

// ItemPrice is one entry of the wiki /latest price snapshot.
type ItemPrice struct {
	High     *int64 `json:"high"`
	HighTime *int64 `json:"highTime"`
	Low      *int64 `json:"low"`
	LowTime  *int64 `json:"lowTime"`
}

// PricesResponse is the bulk price snapshot, keyed by item ID string.
type PricesResponse struct {
	Data map[string]ItemPrice `json:"data"`
}

// CollectionLogItem is one obtained item from the collection log service.
type CollectionLogItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Obtained   bool   `json:"obtained"`
	ObtainedAt string `json:"obtainedAt"`
}

type RecentCollectionLog struct {
	Nickname    string              `json:"nickname"`
	RecentItems []CollectionLogItem `json:"recentItems"`
}
