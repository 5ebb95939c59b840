package extract

// ExtractFields combines pattern matches and filtered recognizer entities
// into one consistent, deduplicated, confidence-ranked field list.
//
// It is a pure function of its input: no shared state, safe to call
// concurrently, and never errors — malformed or empty text degrades to an
// empty list. Consumption order is fixed (labeled money, unlabeled money,
// dates, identifiers, entities) so higher-value candidates win the dedup
// race.
func ExtractFields(text string, entities []Entity) []Field {
	agg := NewAggregator()
	agg.addCandidates(labeledMoneyCandidates(text))
	agg.addCandidates(moneyCandidates(text))
	agg.addCandidates(dateCandidates(text))
	agg.addCandidates(identifierCandidates(text))
	agg.addCandidates(entityCandidates(entities))
	return agg.Fields()
}
