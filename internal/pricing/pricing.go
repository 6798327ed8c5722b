// Package pricing loads the per-year, per-tier bundle price table.
package pricing

import (
	"fmt"
	"io"
	"os"
	"sort"

	"naplan-prep/internal/domain"

	"gopkg.in/yaml.v3"
)

type file struct {
	Currency string                   `yaml:"currency"`
	Years    map[int]map[string]int64 `yaml:"years"`
}

// LoadFile reads a pricing table from a YAML file.
func LoadFile(path string) (domain.PricingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pricing file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a pricing table. Year levels must be NAPLAN
// years, tiers must be A, B or C, and prices must be positive.
func Load(r io.Reader) (domain.PricingTable, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode pricing table: %w", err)
	}
	if len(raw.Years) == 0 {
		return nil, fmt.Errorf("pricing table has no years")
	}

	table := make(domain.PricingTable, len(raw.Years))
	for year, row := range raw.Years {
		if !domain.IsValidYearLevel(year) {
			return nil, fmt.Errorf("pricing table: invalid year level %d", year)
		}
		tiers := make(map[domain.Tier]int64, len(row))
		for name, cents := range row {
			tier, ok := domain.ParseTier(name)
			if !ok {
				return nil, fmt.Errorf("pricing table: year %d has unknown tier %q", year, name)
			}
			if cents <= 0 {
				return nil, fmt.Errorf("pricing table: year %d tier %s price must be positive", year, tier)
			}
			tiers[tier] = cents
		}
		table[year] = tiers
	}
	return table, nil
}

// MissingYears lists NAPLAN years without a pricing row.
func MissingYears(table domain.PricingTable) []int {
	var missing []int
	for _, y := range domain.ValidYearLevels {
		if !table.HasYear(y) {
			missing = append(missing, y)
		}
	}
	sort.Ints(missing)
	return missing
}
