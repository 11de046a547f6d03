package handler

import (
	"net/http"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/aleccaputo/sanguine-web/internal/utils"
)

// Per-tile rulings agreed before the board went live.
var tileRules = []model.TileRule{
	{
		Title: "DT2 Unique",
		Rules: []model.BingoRule{
			{Text: "Virtus pieces, Axe pieces, Vestiges", Type: model.RuleAllowed},
			{Text: "Ingots, quartz, teleports", Type: model.RuleProhibited},
		},
	},
	{
		Title: "5 Slayer Boss Uniques",
		Rules: []model.BingoRule{
			{Text: "Must be from boss itself (not regular monsters)", Type: model.RuleRequirement},
			{Text: "Occult from Thermy ✓, from Smoke Devils ✗", Type: model.RuleExample},
		},
	},
	{
		Title: "Full God D'hide",
		Rules: []model.BingoRule{
			{Text: "Coif, body, legs, boots, vambraces", Type: model.RuleAllowed},
			{Text: "Shield not required", Type: model.RuleProhibited},
			{Text: "Mix gods allowed (Bandos + Guthix pieces)", Type: model.RuleNote},
		},
	},
	{
		Title: "Ornament Kit",
		Rules: []model.BingoRule{
			{Text: "Any tier clue scroll", Type: model.RuleAllowed},
		},
	},
	{
		Title: "Perilous Moons Set",
		Rules: []model.BingoRule{
			{Text: "Full Blood Moon set + weapon", Type: model.RuleAllowed},
			{Text: "Mixing Blood + Blue pieces", Type: model.RuleProhibited},
			{Text: "Must be complete set from ONE moon type", Type: model.RuleRequirement},
		},
	},
	{
		Title: "Nex Unique",
		Rules: []model.BingoRule{
			{Text: "Includes Pet", Type: model.RuleAllowed},
			{Text: "Excludes Nihil Shards", Type: model.RuleProhibited},
		},
	},
	{
		Title: "Full Armadyl or Bandos",
		Rules: []model.BingoRule{
			{Text: "Cannot mix Arma + Bandos pieces", Type: model.RuleProhibited},
			{Text: "Must be from ONE boss only", Type: model.RuleRequirement},
		},
	},
	{
		Title: "25M PK",
		Rules: []model.BingoRule{
			{Text: "Wilderness only, multi-pking allowed", Type: model.RuleAllowed},
			{Text: "No Bounty Hunter, no boosting friends", Type: model.RuleProhibited},
		},
	},
	{
		Title: "1M Budget Raid",
		Rules: []model.BingoRule{
			{Text: "Untradables allowed (count hidden values)", Type: model.RuleAllowed},
			{Text: "Screenshots before + after with Party Hub plugin", Type: model.RuleRequirement},
		},
	},
	{
		Title: "Complete Barrows Set",
		Rules: []model.BingoRule{
			{Text: "Full Guthan's or Full Dharok's", Type: model.RuleAllowed},
			{Text: "No mixing sets", Type: model.RuleProhibited},
			{Text: "Full set from ONE brother", Type: model.RuleRequirement},
		},
	},
	{
		Title: "Colosseum Unique",
		Rules: []model.BingoRule{
			{Text: "Does NOT include Quiver or Sunfire Splinters", Type: model.RuleProhibited},
		},
	},
	{
		Title: "Any Jar",
		Rules: []model.BingoRule{
			{Text: "Any jar from any content (including Skotizo)", Type: model.RuleAllowed},
			{Text: "Stacked totems allowed", Type: model.RuleAllowed},
		},
	},
	{
		Title: "Nightmare Unique",
		Rules: []model.BingoRule{
			{Text: "Does NOT include Parasitic egg or Tablet", Type: model.RuleProhibited},
		},
	},
}

// GetBingoRules serves the static tile ruling list for the bingo page.
func GetBingoRules(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, tileRules)
}
