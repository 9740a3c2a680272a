package menu

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the menu layout from a json file: a flat array of items, file
// order is display order. An empty menu is rejected, the loop could never
// leave it.
func Load(path string) (Menu, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("menu: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return Menu{}, fmt.Errorf("menu: decode %s: %w", path, err)
	}
	if len(items) == 0 {
		return Menu{}, fmt.Errorf("menu: %s lists no items", path)
	}
	return Menu{Items: items}, nil
}
