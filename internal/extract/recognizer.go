package extract

import "context"

// LabelPerson is the entity label the name extractor consumes.
const LabelPerson = "PERSON"

// Entity is a labeled span reported by an external recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer labels spans in text by entity kind. The statistical
// model behind it is a black box to the engine; implementations may be
// remote services and must be safe for concurrent use. A nil recognizer is
// valid and simply contributes no candidates.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
