package scoring

import (
	"io"
	"log/slog"
	"strconv"
)

// Scores maps a question number, as decimal text, to its rating.
// Ratings may be any value toRating understands.
type Scores map[string]any

// FromInts builds Scores from numeric question/rating pairs.
func FromInts(m map[int]int) Scores {
	out := make(Scores, len(m))
	for q, r := range m {
		out[strconv.Itoa(q)] = r
	}
	return out
}

// Totals holds one total per section and per quadrant.
type Totals struct {
	Sections  map[string]int `json:"section_scores" yaml:"section_scores"`
	Quadrants map[string]int `json:"quadrant_scores" yaml:"quadrant_scores"`
}

// Line is a single reported total next to its reference maximum.
type Line struct {
	Kind  string `json:"kind" yaml:"kind"` // section|quadrant
	Name  string `json:"name" yaml:"name"`
	Total int    `json:"total" yaml:"total"`
	Max   int    `json:"max" yaml:"max"`
}

// Report lists the totals quadrants first, then sections, in table order.
func (t Totals) Report() []Line {
	out := make([]Line, 0, len(quadrants)+len(sections))
	for _, c := range quadrants {
		out = append(out, Line{Kind: "quadrant", Name: c.Name, Total: t.Quadrants[c.Name], Max: c.Max})
	}
	for _, c := range sections {
		out = append(out, Line{Kind: "section", Name: c.Name, Total: t.Sections[c.Name], Max: c.Max})
	}
	return out
}

// Option configures an Aggregator.
type Option func(*config)

type config struct {
	Lenient bool // non-coercible ratings count as 0
	Logger  *slog.Logger
}

// WithLenientRatings makes ratings that cannot be read as integers count as 0
// instead of failing the calculation.
func WithLenientRatings(b bool) Option { return func(c *config) { c.Lenient = b } }
func WithLogger(l *slog.Logger) Option  { return func(c *config) { c.Logger = l } }

// Aggregator sums ratings into section and quadrant totals.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	lenient bool
	log     *slog.Logger
}

// NewAggregator returns a strict Aggregator unless options say otherwise.
func NewAggregator(opts ...Option) *Aggregator {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Aggregator{lenient: cfg.Lenient, log: cfg.Logger}
}

// Compute sums scores into totals. Missing questions contribute 0; excluded
// questions are skipped for sections only. It returns ErrInvalidInput for
// nil or empty scores and a *CalculationError when a rating cannot be used.
func (a *Aggregator) Compute(scores Scores) (Totals, error) {
	if len(scores) == 0 {
		return Totals{}, ErrInvalidInput
	}

	sectionTotals, err := a.sum(scores, sections, true)
	if err != nil {
		return Totals{}, err
	}
	quadrantTotals, err := a.sum(scores, quadrants, false)
	if err != nil {
		return Totals{}, err
	}
	return Totals{Sections: sectionTotals, Quadrants: quadrantTotals}, nil
}

func (a *Aggregator) sum(scores Scores, table []Category, skipExcluded bool) (map[string]int, error) {
	out := make(map[string]int, len(table))
	for _, c := range table {
		total := 0
		for _, q := range c.Questions {
			if skipExcluded && IsExcluded(q) {
				continue
			}
			r, err := a.rating(scores, q)
			if err != nil {
				return nil, err
			}
			if total, err = addChecked(total, r); err != nil {
				return nil, &CalculationError{Question: q, Err: err}
			}
		}
		out[c.Name] = total
	}
	return out, nil
}

func (a *Aggregator) rating(scores Scores, q int) (int, error) {
	v, ok := scores[strconv.Itoa(q)]
	if !ok {
		return 0, nil
	}
	r, err := toRating(v)
	if err == nil {
		return r, nil
	}
	if a.lenient {
		a.log.Debug("rating ignored", "question", q, "error", err)
		return 0, nil
	}
	return 0, &CalculationError{Question: q, Err: err}
}

var defaultAggregator = NewAggregator()

// Compute sums scores with the strict default Aggregator.
func Compute(scores Scores) (Totals, error) {
	return defaultAggregator.Compute(scores)
}
