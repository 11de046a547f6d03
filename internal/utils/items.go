package utils

import (
	"fmt"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func ToTitleCase(s string) string {
	return titleCaser.String(s)
}

// UntradeableItems maps item IDs that the price oracle cannot resolve to
// their canonical names. These never get an icon or a price.
var UntradeableItems = map[int64]string{
	// Champion scrolls
	6803: "imp champion scroll",
	6801: "goblin champion scroll",
	6806: "skeleton champion scroll",
	6807: "zombie champion scroll",
	6800: "giant champion scroll",
	6802: "hobgoblin champion scroll",
	6799: "ghoul champion scroll",
	6798: "earth warrior champion scroll",
	6804: "jogre champion scroll",
	6805: "lesser demon champion scroll",

	// Generic pet entry, all pets are untradeable
	0: "pet",

	// Becomes untradeable when combined
	22477: "avernic defender hilt",

	29455: "teleport anchoring scroll",

	// Broken/damaged variants
	28813: "broken zombie axe",
	30324: "broken zombie helmet",
	26376: "torva full helm (damaged)",
	26378: "torva platebody (damaged)",
	26380: "torva platelegs (damaged)",

	// CoX rewards
	22386: "metamorphic dust",
	24670: "twisted ancestral colour kit",

	// Ornament kits
	20062: "torture ornament kit",
	22246: "anguish ornament kit",
	23348: "tormented ornament kit",
	25744: "sanguine ornament kit",
	12526: "holy ornament kit",

	// Prayer scrolls
	21034: "dexterous prayer scroll",
	21079: "arcane prayer scroll",
	30627: "mystic vigour prayer scroll",
	30626: "deadeye prayer scroll",

	// Tools
	22994: "bottomless compost bucket",
	25582: "fish barrel",
	25580: "tackle box",
	24482: "seed box",

	24880: "amy's saw",
	21270: "eternal gem",
	19707: "amulet of eternal glory",
	21392: "expert mining gloves",

	// Big fish trophies
	7989:  "big bass",
	7991:  "big swordfish",
	7993:  "big shark",
	25559: "big harpoonfish",

	10977: "curved bone",
	20724: "imbued heart",
}

// DisplayItemName picks the display text for a drop: resolved metadata first,
// then the untradeable table, then the raw ID. Never fails; absent metadata
// only degrades the display.
func DisplayItemName(itemID *int64, item *model.Item) string {
	if itemID == nil {
		return "No Item ID found"
	}
	if item != nil && item.Name != "" {
		return item.Name
	}
	if name, ok := UntradeableItems[*itemID]; ok {
		return ToTitleCase(name)
	}
	return fmt.Sprintf("Item ID: %d", *itemID)
}
