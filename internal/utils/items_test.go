package utils

import (
	"testing"

	model "github.com/aleccaputo/sanguine-web/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Eternal Gem", ToTitleCase("eternal gem"))
	assert.Equal(t, "Dexterous Prayer Scroll", ToTitleCase("dexterous prayer scroll"))
	assert.Equal(t, "", ToTitleCase(""))
}

func TestDisplayItemName(t *testing.T) {
	id := int64(4151)
	untradeableID := int64(21270)
	unknownID := int64(424242)

	tests := []struct {
		name   string
		itemID *int64
		item   *model.Item
		want   string
	}{
		{name: "no item id", itemID: nil, want: "No Item ID found"},
		{name: "resolved metadata wins", itemID: &id, item: &model.Item{ID: 4151, Name: "Abyssal whip"}, want: "Abyssal whip"},
		{name: "untradeable table", itemID: &untradeableID, want: "Eternal Gem"},
		{name: "untradeable beats empty metadata", itemID: &untradeableID, item: &model.Item{ID: 21270}, want: "Eternal Gem"},
		{name: "raw id fallback", itemID: &unknownID, want: "Item ID: 424242"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayItemName(tt.itemID, tt.item))
		})
	}
}
