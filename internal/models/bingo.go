package model

// StarCollector is one row of the star-bingo results table. The discord ID is
// never serialized; the public leaderboard is nickname-only.
type StarCollector struct {
	Nickname         string  `json:"nickname"`
	DiscordID        string  `json:"-"`
	TotalSubmissions int     `json:"total_submissions"`
	UniqueItems      int     `json:"unique_items"`
	ItemIDs          []int64 `json:"item_ids"`
	ItemsSubmitted   string  `json:"items_submitted"`
	TotalValue       int64   `json:"totalValue"`
}

// Bingo tile rule annotation types.
const (
	RuleAllowed     = "allowed"
	RuleProhibited  = "prohibited"
	RuleRequirement = "requirement"
	RuleExample     = "example"
	RuleNote        = "note"
)

type BingoRule struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type TileRule struct {
	Title string      `json:"title"`
	Rules []BingoRule `json:"rules"`
}
