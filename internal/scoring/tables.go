package scoring

import "slices"

// Category is a named group of questionnaire items.
type Category struct {
	Name      string `json:"name" yaml:"name"`
	Questions []int  `json:"questions" yaml:"questions"`
	Max       int    `json:"max" yaml:"max"` // reference "final score" ceiling
}

// Rating scale used by the questionnaire form. Not enforced.
const (
	RatingMin = 0
	RatingMax = 5
)

var excludedQuestions = map[int]struct{}{
	10: {}, 11: {}, 17: {}, 29: {}, 42: {}, 43: {},
}

// Sections are contiguous today but are summed as plain sets.
var sections = []Category{
	{Name: "auditory", Questions: span(1, 8), Max: 40},
	{Name: "visual", Questions: span(9, 15), Max: 30},
	{Name: "touch", Questions: span(16, 26), Max: 55},
	{Name: "movement", Questions: span(27, 34), Max: 40},
	{Name: "body_position", Questions: span(35, 42), Max: 40},
	{Name: "oral", Questions: span(43, 52), Max: 50},
	{Name: "conduct", Questions: span(53, 61), Max: 45},
	{Name: "social_emotional", Questions: span(62, 75), Max: 70},
	{Name: "attentional", Questions: span(76, 86), Max: 50},
}

var quadrants = []Category{
	{Name: "seeking", Max: 95, Questions: []int{
		14, 21, 22, 25, 27, 28, 30, 31, 32, 41, 48, 49, 50, 51, 55, 56, 60, 82, 83,
	}},
	{Name: "avoiding", Max: 100, Questions: []int{
		1, 2, 5, 15, 18, 58, 59, 61, 63, 64, 65, 66, 67, 68, 70, 71, 72, 74, 75, 81,
	}},
	{Name: "sensitivity", Max: 95, Questions: []int{
		3, 4, 6, 7, 9, 13, 16, 19, 20, 44, 45, 46, 47, 52, 69, 73, 77, 78, 84,
	}},
	{Name: "registration", Max: 110, Questions: []int{
		8, 12, 23, 24, 26, 33, 34, 35, 36, 37, 38, 39, 40, 53, 54, 57, 62, 76, 79, 80, 85, 86,
	}},
}

// span returns the inclusive range [from, to].
func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for q := from; q <= to; q++ {
		out = append(out, q)
	}
	return out
}

// Sections returns a copy of the section table in reporting order.
func Sections() []Category { return cloneCategories(sections) }

// Quadrants returns a copy of the quadrant table in reporting order.
func Quadrants() []Category { return cloneCategories(quadrants) }

// ExcludedQuestions returns the questions left out of section totals, ascending.
func ExcludedQuestions() []int {
	out := make([]int, 0, len(excludedQuestions))
	for q := range excludedQuestions {
		out = append(out, q)
	}
	slices.Sort(out)
	return out
}

// IsExcluded reports whether q is left out of section totals.
func IsExcluded(q int) bool {
	_, ok := excludedQuestions[q]
	return ok
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		out[i] = Category{
			Name:      c.Name,
			Questions: append([]int(nil), c.Questions...),
			Max:       c.Max,
		}
	}
	return out
}

// Profile describes the questionnaire tables.
type Profile struct {
	Sections  []Category `json:"sections" yaml:"sections"`
	Quadrants []Category `json:"quadrants" yaml:"quadrants"`
	Excluded  []int      `json:"excluded_questions" yaml:"excluded_questions"`
	RatingMin int        `json:"rating_min" yaml:"rating_min"`
	RatingMax int        `json:"rating_max" yaml:"rating_max"`
}

// Describe returns a copy of every static table.
func Describe() Profile {
	return Profile{
		Sections:  Sections(),
		Quadrants: Quadrants(),
		Excluded:  ExcludedQuestions(),
		RatingMin: RatingMin,
		RatingMax: RatingMax,
	}
}
