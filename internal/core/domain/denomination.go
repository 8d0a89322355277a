package domain

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Denomination represents one bill value in the catalog.
type Denomination struct {
	Value int64  `json:"value" yaml:"value"` // Monetary value, acts as the column key
	Label string `json:"label" yaml:"label"` // Display label, e.g. "1000元"
}

// Catalog is the fixed, ordered set of denominations for the session.
// It is built once at process start and never mutated afterwards.
type Catalog struct {
	denominations []Denomination
	byValue       map[int64]Denomination
}

// DefaultCatalog returns the built-in TWD catalog.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog([]Denomination{
		{Value: 1000, Label: "1000元"},
		{Value: 500, Label: "500元"},
		{Value: 100, Label: "100元"},
	})
	return c
}

// NewCatalog validates the given denominations and returns a catalog ordered
// by descending value.
func NewCatalog(denominations []Denomination) (*Catalog, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one denomination")
	}

	byValue := make(map[int64]Denomination, len(denominations))
	ordered := make([]Denomination, len(denominations))
	copy(ordered, denominations)

	for _, d := range ordered {
		if d.Value <= 0 {
			return nil, fmt.Errorf("denomination value must be positive, got %d", d.Value)
		}
		if d.Label == "" {
			return nil, fmt.Errorf("denomination %d has an empty label", d.Value)
		}
		if _, exists := byValue[d.Value]; exists {
			return nil, fmt.Errorf("duplicate denomination value %d", d.Value)
		}
		byValue[d.Value] = d
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Value > ordered[j].Value })

	return &Catalog{denominations: ordered, byValue: byValue}, nil
}

// LoadCatalogFile reads a YAML denomination list and builds a catalog from it.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file struct {
		Denominations []Denomination `yaml:"denominations"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	catalog, err := NewCatalog(file.Denominations)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return catalog, nil
}

// Denominations returns the catalog entries in display order (descending value).
func (c *Catalog) Denominations() []Denomination {
	out := make([]Denomination, len(c.denominations))
	copy(out, c.denominations)
	return out
}

// Values returns the denomination values in display order.
func (c *Catalog) Values() []int64 {
	values := make([]int64, len(c.denominations))
	for i, d := range c.denominations {
		values[i] = d.Value
	}
	return values
}

// Contains reports whether the given value is a catalog denomination.
func (c *Catalog) Contains(value int64) bool {
	_, ok := c.byValue[value]
	return ok
}

// Len returns the number of denominations in the catalog.
func (c *Catalog) Len() int {
	return len(c.denominations)
}
