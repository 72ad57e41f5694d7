package risk

import (
	"math"
	"strconv"
	"strings"

	"safelens/internal/domain"
)

// Label thresholds.
const (
	HighRiskThreshold = 6.0
	WarningThreshold  = 4.0
)

// Phrase is a weighted indicator.
type Phrase struct {
	Text   string
	Weight float64
}

// Category is a named, ordered group of phrases.
type Category struct {
	Name    string
	Phrases []Phrase
}

// DefaultCategories is the built-in phrase table.
var DefaultCategories = []Category{
	{Name: "threat", Phrases: []Phrase{
		{"kill you", 4.0}, {"kill me", 4.0}, {"i'll kill you", 4.0}, {"going to die", 3.5},
		{"hurt you", 3.0}, {"hurt me", 3.0}, {"hit you", 3.0}, {"beat you", 3.0},
		{"hit me", 3.0}, {"beat me", 3.0}, {"assault", 3.0}, {"rape", 4.0},
		{"punch", 2.5}, {"donner you", 3.0},
	}},
	{Name: "insult", Phrases: []Phrase{
		{"stupid", 1.5}, {"useless", 2.0}, {"worthless", 2.5}, {"idiot", 1.5},
		{"bitch", 2.0}, {"slut", 2.5}, {"whore", 2.5}, {"ugly", 1.5}, {"fat", 1.5},
		{"disgusting", 2.0}, {"pathetic", 2.0}, {"dumb", 1.5}, {"crazy", 1.5},
		{"psycho", 2.0}, {"domkop", 2.0}, {"poes", 3.5},
	}},
	{Name: "fear", Phrases: []Phrase{
		{"scared", 2.0}, {"afraid", 2.0}, {"terrified", 3.0}, {"nervous", 1.0},
		{"help me", 3.5}, {"trapped", 3.0}, {"danger", 2.5}, {"he follows me", 3.0},
		{"follows me", 3.0}, {"i'm hiding", 2.5}, {"don't leave me", 2.0},
	}},
	{Name: "control", Phrases: []Phrase{
		{"where are you", 1.5}, {"who are you with", 1.5}, {"send pic", 1.0},
		{"you can't go", 2.5}, {"don't wear that", 2.0}, {"you're not allowed", 2.5},
		{"answer me", 1.5}, {"i own you", 3.0}, {"you belong to me", 3.0},
		{"stay home", 1.5},
	}},
	{Name: "gaslighting", Phrases: []Phrase{
		{"you're overreacting", 1.5}, {"it's your fault", 2.0}, {"you made me do it", 2.5},
		{"that never happened", 1.5}, {"you're imagining things", 1.5},
		{"stop being so sensitive", 1.5}, {"it was just a joke", 1.0},
	}},
}

// Scorer classifies text against a phrase table.
type Scorer struct {
	categories []Category
}

// NewScorer returns a Scorer over categories, or DefaultCategories when
// none are given.
func NewScorer(categories ...Category) *Scorer {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Scorer{categories: categories}
}

// Score returns the label, the total weight rounded to one decimal and the
// matched phrases as "<phrase> (score: <weight>)", in table order.
func (s *Scorer) Score(text string) domain.Analysis {
	lower := strings.ToLower(text)
	var total float64
	found := domain.Keywords{}
	for _, c := range s.categories {
		for _, p := range c.Phrases {
			if strings.Contains(lower, p.Text) {
				total += p.Weight
				found = append(found, p.Text+" (score: "+formatWeight(p.Weight)+")")
			}
		}
	}
	return domain.Analysis{
		Label:    Label(total),
		Score:    math.Round(total*10) / 10,
		Keywords: found,
	}
}

// Label maps a total score to a risk label.
func Label(score float64) string {
	switch {
	case score >= HighRiskThreshold:
		return domain.LabelHighRisk
	case score >= WarningThreshold:
		return domain.LabelWarning
	default:
		return domain.LabelSafe
	}
}

func formatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
