package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is an ordered list of image URLs under a single label.
type Category struct {
	Name string   `yaml:"name"`
	URLs []string `yaml:"urls"`
}

// Catalog is the full set of categories, iterated in definition order.
// Category names are unique; URLs may repeat.
type Catalog []Category

// Builtin returns the default landmark-photo catalog.
func Builtin() Catalog {
	return Catalog{
		{
			Name: "copenhagen",
			URLs: []string{
				"https://images.unsplash.com/photo-1513622470522-26c3c8a854bc?w=800", // Tivoli
				"https://images.unsplash.com/photo-1564507592333-c60657eea523?w=800", // Little Mermaid
				"https://images.unsplash.com/photo-1549573925-9975a04a9a2d?w=800",    // Nyhavn
				"https://images.unsplash.com/photo-1557093793-e196ae071479?w=800",    // Rosenborg
				"https://images.unsplash.com/photo-1588698301085-57f4c7c4a8cb?w=800", // Christiansborg
				"https://images.unsplash.com/photo-1599946347371-68eb71b16afc?w=800", // Round Tower
				"https://images.unsplash.com/photo-1589992602626-fa7c8f1f8f01?w=800", // Amalienborg
				"https://images.unsplash.com/photo-1526391751351-0a4df8d8e511?w=800", // Copenhagen street
				"https://images.unsplash.com/photo-1602491453631-e2a5ad90a131?w=800", // Canal
				"https://images.unsplash.com/photo-1554939437-ecc492c67b78?w=800",    // Architecture
			},
		},
		{
			Name: "paris",
			URLs: []string{
				"https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800", // Eiffel Tower
				"https://images.unsplash.com/photo-1499856871958-5b9627545d1a?w=800", // Cityscape
				"https://images.unsplash.com/photo-1511739001486-6bfe10ce785f?w=800", // Arc de Triomphe
				"https://images.unsplash.com/photo-1431274172761-fca41d930114?w=800", // Notre Dame
				"https://images.unsplash.com/photo-1509439581779-6298f75bf6e5?w=800", // Louvre
				"https://images.unsplash.com/photo-1522093007474-d86e9bf7ba6f?w=800", // Sacre Coeur
				"https://images.unsplash.com/photo-1550340499-a6c60fc8287c?w=800",    // Street
				"https://images.unsplash.com/photo-1549144511-f099e773c147?w=800",    // Montmartre
				"https://images.unsplash.com/photo-1505576391880-b3f9d713dc4f?w=800", // Seine
				"https://images.unsplash.com/photo-1500039436846-25ae2f11882e?w=800", // Champs Elysees
			},
		},
		{
			Name: "berlin",
			URLs: []string{
				"https://images.unsplash.com/photo-1560969184-10fe8719e047?w=800",    // Brandenburg Gate
				"https://images.unsplash.com/photo-1587330979470-3595ac045ab7?w=800", // TV Tower
				"https://images.unsplash.com/photo-1599946347371-68eb71b16afc?w=800", // Reichstag
				"https://images.unsplash.com/photo-1528728329032-2972f65dfb3f?w=800", // Cathedral
				"https://images.unsplash.com/photo-1566404791232-af9fe0ae8f8b?w=800", // East Side Gallery
				"https://images.unsplash.com/photo-1546726747-421c6d69c929?w=800",    // Berlin Wall
				"https://images.unsplash.com/photo-1599098939570-fb3a1c88e999?w=800", // Museum Island
				"https://images.unsplash.com/photo-1587330979470-3595ac045ab7?w=800", // Alexanderplatz
				"https://images.unsplash.com/photo-1560969184-10fe8719e047?w=800",    // Checkpoint Charlie
				"https://images.unsplash.com/photo-1528728329032-2972f65dfb3f?w=800", // Gendarmenmarkt
			},
		},
	}
}

// Total returns the number of items across all categories.
func (c Catalog) Total() int {
	total := 0
	for _, cat := range c {
		total += len(cat.URLs)
	}
	return total
}

// Validate checks that the catalog is usable: at least one category,
// unique non-empty names, and no empty URL entries.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	seen := make(map[string]bool, len(c))
	for _, cat := range c {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.URLs) == 0 {
			return fmt.Errorf("category %q has no urls", cat.Name)
		}
		for i, u := range cat.URLs {
			if u == "" {
				return fmt.Errorf("category %q: empty url at position %d", cat.Name, i+1)
			}
		}
	}
	return nil
}

// Filename returns the working-file name for the nth item of a category.
// n is 1-based; names are unique within a run because category names are
// unique and positions never repeat.
func Filename(category string, n int) string {
	return fmt.Sprintf("%s_%d.jpg", category, n)
}

// LoadFrom reads a catalog from a YAML file, a sequence of
// {name, urls} entries.
func LoadFrom(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
