package model

import (
	"wildtrack/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDocument converts a decoded bson document into a plain
// repository.Document: ordered sub-documents (bson.D) become maps and
// primitive.DateTime becomes time.Time, so gateway results compare naturally
// and serialize to JSON objects instead of key/value arrays.
func NormalizeDocument(doc bson.M) repository.Document {
	out := make(repository.Document, len(doc))
	for key, value := range doc {
		out[key] = normalizeValue(value)
	}

	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case bson.D:
		out := make(repository.Document, len(v))
		for _, elem := range v {
			out[elem.Key] = normalizeValue(elem.Value)
		}

		return out
	case bson.M:
		return NormalizeDocument(v)
	case bson.A:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeValue(elem)
		}

		return out
	case primitive.DateTime:
		return v.Time().UTC()
	default:
		return value
	}
}
