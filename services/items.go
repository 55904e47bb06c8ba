package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// NormalizeItems turns whatever an order's items column holds into a list.
// A nil value, malformed JSON or a scalar all give an empty list; a single
// object is wrapped. It never fails.
func NormalizeItems(raw interface{}) []interface{} {
	switch v := raw.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return v
	case map[string]interface{}:
		return []interface{}{v}
	case string:
		return fromJSONText(v)
	case datatypes.JSON:
		return fromJSONDocument(v)
	case json.RawMessage:
		return fromJSONDocument(v)
	case []byte:
		return fromJSONDocument(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return []interface{}{}
		}
		return fromJSONDocument(b)
	}
}

// fromJSONDocument handles a stored JSON value, which may itself be a JSON
// string holding the encoded list.
func fromJSONDocument(b []byte) []interface{} {
	if len(b) == 0 {
		return []interface{}{}
	}
	var decoded interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return []interface{}{}
	}
	if s, ok := decoded.(string); ok {
		return fromJSONText(s)
	}
	return shape(decoded)
}

func fromJSONText(s string) []interface{} {
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return []interface{}{}
	}
	return shape(decoded)
}

func shape(decoded interface{}) []interface{} {
	switch v := decoded.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		return []interface{}{v}
	default:
		return []interface{}{}
	}
}
