package fromrdf

import (
	"bytes"

	"sourcery.dny.nu/fromrdf/internal/json"
)

// ValueObject is the JSON-LD representation of a single RDF term.
//
// For IRIs and blank nodes it's a node reference and only ID is set. For
// literals Value is set, together with either Type, or Language and/or
// Direction. It's never both.
type ValueObject struct {
	ID        string          // @id / KeywordID
	Value     json.RawMessage // @value / KeywordValue
	Type      string          // @type / KeywordType
	Language  string          // @language / KeywordLanguage
	Direction string          // @direction / KeywordDirection
}

// Has returns if the value object has the requested keyword.
func (v ValueObject) Has(prop string) bool {
	if !isKeyword(prop) {
		return false
	}

	switch prop {
	case KeywordID:
		return v.ID != ""
	case KeywordValue:
		return v.Value != nil
	case KeywordType:
		return v.Type != ""
	case KeywordLanguage:
		return v.Language != ""
	case KeywordDirection:
		return v.Direction != ""
	default:
		return false
	}
}

// IsZero returns if this is the zero value of a [ValueObject].
func (v ValueObject) IsZero() bool {
	return v.ID == "" && v.Value == nil && v.Type == "" &&
		v.Language == "" && v.Direction == ""
}

// IsReference checks if this is a node reference.
//
// This means:
//   - It has no @value.
//   - It has no @type, @language or @direction.
func (v ValueObject) IsReference() bool {
	return !v.Has(KeywordValue) &&
		!v.Has(KeywordType) &&
		!v.Has(KeywordLanguage) &&
		!v.Has(KeywordDirection)
}

// IsValue checks if this is a value object.
//
// This means:
//   - It has an @value.
//   - It has no @id.
//   - It may have @type, or @language and @direction, but not both.
func (v ValueObject) IsValue() bool {
	if !v.Has(KeywordValue) || v.Has(KeywordID) {
		return false
	}

	return !v.Has(KeywordType) ||
		(!v.Has(KeywordLanguage) && !v.Has(KeywordDirection))
}

// MarshalJSON encodes to Expanded Document Form.
//
// Keys are always written in the same order: @id for a node reference,
// otherwise @value followed by @language and @direction, or @type.
//
// HTML characters are not escaped. Marshalling through [encoding/json.Marshal]
// escapes them again; use an [encoding/json.Encoder] with SetEscapeHTML(false)
// to keep them.
func (v ValueObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	add := func(key string, value []byte) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(json.String(key))
		buf.WriteByte(':')
		buf.Write(value)
	}

	if !v.Has(KeywordValue) {
		add(KeywordID, json.String(v.ID))
	} else {
		add(KeywordValue, v.Value)
	}

	if v.Has(KeywordLanguage) {
		add(KeywordLanguage, json.String(v.Language))
	}

	if v.Has(KeywordDirection) {
		add(KeywordDirection, json.String(v.Direction))
	}

	if v.Has(KeywordType) {
		add(KeywordType, json.String(v.Type))
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
