// Package catalog holds the static technology write-ups behind the skill
// showcase pages. The catalog is compiled in; there is no authoring API and
// no storage behind it.
package catalog

import (
	"sort"
	"strings"
)

// Category groups technologies the way the checklist page presents them.
type Category string

const (
	CategoryLanguages     Category = "languages"
	CategoryDatabases     Category = "databases"
	CategoryCloud         Category = "cloud"
	CategoryAI            Category = "ai"
	CategoryFrontend      Category = "frontend"
	CategoryObservability Category = "observability"
)

// Technology is one write-up: proficiency, working notes, and pointers.
type Technology struct {
	Name          string          `json:"name"`
	Category      Category        `json:"category"`
	Color         string          `json:"color"`
	Proficiency   int             `json:"proficiency"` // 0-100
	Experience    string          `json:"experience"`
	BestPractices []string        `json:"best_practices"`
	Documentation []Documentation `json:"documentation"`
	QuickStart    string          `json:"quick_start"`
	InitSteps     []string        `json:"init_steps,omitempty"`
	ProTips       []string        `json:"pro_tips,omitempty"`
}

// Documentation is a titled external link.
type Documentation struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// IsValidCategory reports whether s names a known category.
func IsValidCategory(s string) bool {
	switch Category(strings.ToLower(s)) {
	case CategoryLanguages, CategoryDatabases, CategoryCloud,
		CategoryAI, CategoryFrontend, CategoryObservability:
		return true
	}
	return false
}

// All returns every technology, sorted by descending proficiency with name
// as tiebreaker, the order the universe view renders bubbles in.
func All() []Technology {
	out := make([]Technology, len(technologies))
	copy(out, technologies)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Proficiency != out[j].Proficiency {
			return out[i].Proficiency > out[j].Proficiency
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ByCategory returns the technologies in a category, in All() order. The
// category is matched case-insensitively, like Get and IsValidCategory.
func ByCategory(cat Category) []Technology {
	normalized := Category(strings.ToLower(string(cat)))
	var out []Technology
	for _, tech := range All() {
		if tech.Category == normalized {
			out = append(out, tech)
		}
	}
	return out
}

// Get returns a technology by case-insensitive name.
func Get(name string) (Technology, bool) {
	for _, tech := range technologies {
		if strings.EqualFold(tech.Name, name) {
			return tech, true
		}
	}
	return Technology{}, false
}
