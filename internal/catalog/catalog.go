package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Species string

const (
	SpeciesDog Species = "chien"
	SpeciesCat Species = "chat"
)

// Valid reports whether s is one of the supported species.
func (s Species) Valid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

// Question is an immutable catalog entry. Weight expresses relative severity;
// critical questions alone justify urgent escalation. Species empty means the
// question applies to every species. Confirmation, when set, is the free-text
// prompt shown after a critical question is answered yes.
type Question struct {
	ID           string    `yaml:"id" json:"id"`
	Category     string    `yaml:"-" json:"category"`
	Text         string    `yaml:"text" json:"text"`
	Weight       int       `yaml:"weight" json:"weight"`
	IsCritical   bool      `yaml:"critical" json:"is_critical"`
	Species      []Species `yaml:"species" json:"species,omitempty"`
	Confirmation string    `yaml:"confirmation" json:"confirmation,omitempty"`
}

// AppliesTo reports whether the question should be asked for the given species.
func (q Question) AppliesTo(s Species) bool {
	if len(q.Species) == 0 {
		return true
	}
	for _, candidate := range q.Species {
		if candidate == s {
			return true
		}
	}
	return false
}

// Category groups questions under a display name.
type Category struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// DefaultCategoryID is used when no answered question points at a category.
const DefaultCategoryID = "general"

// Catalog is the full question set, loaded once at startup and read-only
// thereafter. Iteration order is the catalog file order and is stable.
type Catalog struct {
	categories []Category
	questions  []Question
	byID       map[string]Question
	names      map[string]string
}

//go:embed questions.yaml
var questionsYAML []byte

// Load parses and validates the embedded question catalog.
func Load() (*Catalog, error) {
	return Parse(questionsYAML)
}

// Parse builds a catalog from raw YAML. Split out from Load so tests can
// exercise validation and species filtering with synthetic data.
func Parse(raw []byte) (*Catalog, error) {
	var file struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("question catalog is empty")
	}

	cat := &Catalog{
		categories: file.Categories,
		byID:       make(map[string]Question),
		names:      make(map[string]string),
	}
	for ci, category := range file.Categories {
		if category.ID == "" || category.Name == "" {
			return nil, fmt.Errorf("category %d is missing id or name", ci)
		}
		if _, dup := cat.names[category.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", category.ID)
		}
		cat.names[category.ID] = category.Name

		for qi, q := range category.Questions {
			if q.ID == "" {
				return nil, fmt.Errorf("question %d in category %q has no id", qi, category.ID)
			}
			if q.Text == "" {
				return nil, fmt.Errorf("question %q has no text", q.ID)
			}
			if q.Weight < 1 {
				return nil, fmt.Errorf("question %q has invalid weight %d", q.ID, q.Weight)
			}
			for _, s := range q.Species {
				if !s.Valid() {
					return nil, fmt.Errorf("question %q references unknown species %q", q.ID, s)
				}
			}
			if _, dup := cat.byID[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %q", q.ID)
			}
			q.Category = category.ID
			cat.byID[q.ID] = q
			cat.questions = append(cat.questions, q)
			cat.categories[ci].Questions[qi] = q
		}
	}
	return cat, nil
}

// Questions returns every question in catalog order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// ByID resolves a question by id.
func (c *Catalog) ByID(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Categories returns the catalog grouped by category, in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ForSpecies returns the catalog restricted to questions applicable to the
// given species. Categories left without questions are dropped.
func (c *Catalog) ForSpecies(s Species) []Category {
	out := make([]Category, 0, len(c.categories))
	for _, category := range c.categories {
		filtered := Category{ID: category.ID, Name: category.Name}
		for _, q := range category.Questions {
			if q.AppliesTo(s) {
				filtered.Questions = append(filtered.Questions, q)
			}
		}
		if len(filtered.Questions) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}

// CategoryName maps a category id to its display name, falling back to
// "Général" for the default category and unknown ids.
func (c *Catalog) CategoryName(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return "Général"
}
