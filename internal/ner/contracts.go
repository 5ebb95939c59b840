package ner

import "context"

// Entity is one labeled span from the recognizer, using its native tag set
// (ORG, PERSON, GPE, ...).
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer is the external named-entity capability the pipeline depends
// on. Implementations own nothing beyond the call: no model lifecycle, no
// caching.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
