package extract

import (
	"fmt"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
)

// Field is one extracted value. Fields are created once per match during a
// single extraction call, are immutable, and are owned by the result list.
type Field struct {
	Kind       constants.FieldKind `json:"field"`
	Value      string              `json:"value"`
	Confidence float64             `json:"confidence"`
}

// Entity is a named-entity span produced by an external recognizer.
// Label uses the recognizer's native tag set ("ORG", "PERSON", "GPE", ...).
type Entity struct {
	Text  string
	Label string
}

// NewField validates the caller contract: a known kind and a confidence
// within [0,1]. Malformed values are rejected, never defaulted.
func NewField(kind constants.FieldKind, value string, confidence float64) (Field, error) {
	if !kind.IsValid() {
		return Field{}, common.NewAppError("INVALID_FIELD_KIND",
			fmt.Sprintf("unknown field kind %q", kind), common.ErrInvalidInput)
	}
	if confidence < 0 || confidence > 1 {
		return Field{}, common.NewAppError("INVALID_CONFIDENCE",
			fmt.Sprintf("confidence %v outside [0,1]", confidence), common.ErrInvalidInput)
	}
	return Field{Kind: kind, Value: value, Confidence: confidence}, nil
}
