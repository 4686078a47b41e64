// Package catalog loads the static task catalog: the ordered persons, the
// rotation base date and, per period, the ordered category to task mapping.
//
// The document may be JSON or YAML. Category order drives the rotation, so it
// is decoded through yaml.v3 nodes, which keep mapping keys in document order.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var baseDateLayouts = []string{"2006-01-02", time.RFC3339}

// Catalog is immutable once loaded.
type Catalog struct {
	Persons  []string
	BaseDate time.Time // zero when absent or unparseable
	periods  map[string]*period
	order    []string
}

type period struct {
	categories []string
	tasks      map[string][]string
}

// Load reads and parses the catalog at path using the local time zone.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, time.Local)
}

// Parse decodes a catalog document. Dates without a zone are read in loc.
func Parse(data []byte, loc *time.Location) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse catalog: top level must be a mapping")
	}

	c := &Catalog{periods: map[string]*period{}}
	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		switch key {
		case "personer", "persons":
			if err := value.Decode(&c.Persons); err != nil {
				return nil, fmt.Errorf("failed to decode persons: %w", err)
			}
		case "base_date":
			c.BaseDate = parseBaseDate(value.Value, loc)
		default:
			if value.Kind != yaml.MappingNode {
				continue
			}
			p, err := decodePeriod(value)
			if err != nil {
				return nil, fmt.Errorf("failed to decode period %q: %w", key, err)
			}
			c.periods[key] = p
			c.order = append(c.order, key)
		}
	}

	return c, nil
}

func decodePeriod(node *yaml.Node) (*period, error) {
	p := &period{tasks: map[string][]string{}}
	for i := 0; i+1 < len(node.Content); i += 2 {
		category := node.Content[i].Value
		var tasks []string
		if err := node.Content[i+1].Decode(&tasks); err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		if _, dup := p.tasks[category]; !dup {
			p.categories = append(p.categories, category)
		}
		p.tasks[category] = tasks
	}
	return p, nil
}

func parseBaseDate(value string, loc *time.Location) time.Time {
	for _, layout := range baseDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc)
		}
	}
	return time.Time{}
}

// Periods lists the period names in document order.
func (c *Catalog) Periods() []string {
	return append([]string(nil), c.order...)
}

// Categories lists a period's categories in document order.
func (c *Catalog) Categories(periodName string) []string {
	p, ok := c.periods[periodName]
	if !ok {
		return nil
	}
	return append([]string(nil), p.categories...)
}

// Tasks returns the task labels of a category. Unknown names give nil.
func (c *Catalog) Tasks(periodName, category string) []string {
	p, ok := c.periods[periodName]
	if !ok {
		return nil
	}
	return p.tasks[category]
}
