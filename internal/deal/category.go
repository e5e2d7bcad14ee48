package deal

import (
	"fmt"
	"strings"

	"techdeals/dealsearcher/pkg/errors"
)

// ProductCategory is a closed product classification used to scope and
// phrase retailer searches.
type ProductCategory string

const (
	CategoryCPU         ProductCategory = "CPU"
	CategoryGPU         ProductCategory = "GPU"
	CategoryRAM         ProductCategory = "RAM"
	CategoryMotherboard ProductCategory = "MOTHERBOARD"
	CategorySSD         ProductCategory = "SSD"
	CategoryHDD         ProductCategory = "HDD"
	CategoryPSU         ProductCategory = "PSU"
	CategoryCase        ProductCategory = "CASE"
	CategoryConsole     ProductCategory = "CONSOLE"
	CategoryTelevision  ProductCategory = "TELEVISION"
	CategoryMonitor     ProductCategory = "MONITOR"
)

// categoryInfo holds the human label and the default retailer search phrase
type categoryInfo struct {
	label      string
	searchTerm string
}

var categories = map[ProductCategory]categoryInfo{
	CategoryCPU:         {label: "CPU", searchTerm: "processor"},
	CategoryGPU:         {label: "GPU", searchTerm: "graphics card"},
	CategoryRAM:         {label: "RAM", searchTerm: "ram memory"},
	CategoryMotherboard: {label: "Motherboard", searchTerm: "motherboard"},
	CategorySSD:         {label: "SSD", searchTerm: "ssd"},
	CategoryHDD:         {label: "HDD", searchTerm: "hard drive"},
	CategoryPSU:         {label: "Power Supply", searchTerm: "power supply"},
	CategoryCase:        {label: "PC Case", searchTerm: "pc case"},
	CategoryConsole:     {label: "Console", searchTerm: "game console"},
	CategoryTelevision:  {label: "Television", searchTerm: "4k tv"},
	CategoryMonitor:     {label: "Monitor", searchTerm: "monitor"},
}

// order of AllCategories, matching the enum declaration order
var categoryOrder = []ProductCategory{
	CategoryCPU,
	CategoryGPU,
	CategoryRAM,
	CategoryMotherboard,
	CategorySSD,
	CategoryHDD,
	CategoryPSU,
	CategoryCase,
	CategoryConsole,
	CategoryTelevision,
	CategoryMonitor,
}

// Label returns the human-readable category name
func (c ProductCategory) Label() string {
	if info, ok := categories[c]; ok {
		return info.label
	}
	return string(c)
}

// SearchTerm returns the default retailer search phrase for the category
func (c ProductCategory) SearchTerm() string {
	if info, ok := categories[c]; ok {
		return info.searchTerm
	}
	return strings.ToLower(string(c))
}

// Valid reports whether the category is part of the closed enumeration
func (c ProductCategory) Valid() bool {
	_, ok := categories[c]
	return ok
}

// AllCategories returns every known category in declaration order
func AllCategories() []ProductCategory {
	out := make([]ProductCategory, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a category name (case-insensitive) to its enum value
func ParseCategory(name string) (ProductCategory, error) {
	c := ProductCategory(strings.ToUpper(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", errors.NewValidation(fmt.Sprintf("unknown product category: %q", name))
	}
	return c, nil
}
