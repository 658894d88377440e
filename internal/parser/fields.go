package parser

import (
	"encoding/json"

	"github.com/Belphemur/TVShowInfo/internal/config"
)

// objectFields splits a JSON object into its members. ok is false for anything but an object.
func objectFields(raw json.RawMessage) (fields map[string]json.RawMessage, ok bool) {
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// decodeField decodes one member of an object. A missing member or one with an unexpected
// type yields the zero value, leaving the other members of the record intact.
func decodeField[T any](fields map[string]json.RawMessage, key string) T {
	var value T
	raw, ok := fields[key]
	if !ok {
		return value
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		logger := config.GetLogger()
		logger.Debug().Err(err).Str("field", key).Msg("Ignoring field with unexpected type")
		var zero T
		return zero
	}
	return value
}
