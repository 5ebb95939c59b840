package extract

import (
	"sort"
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
)

// Aggregator merges candidate fields into one deduplicated list. All state
// is local to a single extraction call; a zero-dependency value owned by the
// caller's stack frame.
//
// Dedup policy, applied at insertion time:
//   - Amount-family kinds share one namespace keyed by the value with all
//     non-digit, non-decimal-point characters stripped; first writer wins.
//   - Organization/Person share one namespace keyed by the lowercase,
//     period-trimmed value; a candidate is dropped when its key equals,
//     contains, or is contained by an existing key.
//   - All other kinds dedup by exact value per kind.
type Aggregator struct {
	fields  []Field
	amounts map[string]struct{}
	names   map[string]struct{}
	exact   map[constants.FieldKind]map[string]struct{}
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		fields:  make([]Field, 0, 16),
		amounts: make(map[string]struct{}),
		names:   make(map[string]struct{}),
		exact:   make(map[constants.FieldKind]map[string]struct{}),
	}
}

// Add inserts a candidate, enforcing the caller contract (known kind,
// confidence in [0,1]). Values empty after trimming are dropped silently;
// duplicates are dropped per the namespace rules above.
func (a *Aggregator) Add(kind constants.FieldKind, value string, confidence float64) error {
	f, err := NewField(kind, strings.TrimSpace(value), confidence)
	if err != nil {
		return err
	}
	if f.Value == "" {
		return nil
	}

	switch {
	case kind.IsAmountKind():
		norm := reAmountNorm.ReplaceAllString(f.Value, "")
		if _, dup := a.amounts[norm]; dup {
			return nil
		}
		a.amounts[norm] = struct{}{}

	case kind.IsNameKind():
		norm := strings.Trim(strings.ToLower(f.Value), ".")
		for existing := range a.names {
			if strings.Contains(existing, norm) || strings.Contains(norm, existing) {
				return nil
			}
		}
		a.names[norm] = struct{}{}

	default:
		seen, ok := a.exact[kind]
		if !ok {
			seen = make(map[string]struct{})
			a.exact[kind] = seen
		}
		if _, dup := seen[f.Value]; dup {
			return nil
		}
		seen[f.Value] = struct{}{}
	}

	a.fields = append(a.fields, f)
	return nil
}

// Fields returns the final list, stably sorted by (kind priority,
// -confidence). Ties preserve insertion order.
func (a *Aggregator) Fields() []Field {
	out := make([]Field, len(a.fields))
	copy(out, a.fields)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Kind.Priority(), out[j].Kind.Priority()
		if pi != pj {
			return pi < pj
		}
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func (a *Aggregator) addCandidates(cs []candidate) {
	for _, c := range cs {
		// Matcher output always satisfies the field contract.
		_ = a.Add(c.kind, c.value, c.confidence)
	}
}
