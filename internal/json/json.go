package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

type RawMessage = json.RawMessage

// ErrTrailingData is returned by [Literal] when the text holds more than one
// JSON value.
var ErrTrailingData = errors.New("json: unexpected data after top-level value")

// ErrInvalidUTF8 is returned by [Literal] when the text isn't valid UTF-8.
var ErrInvalidUTF8 = errors.New("json: invalid UTF-8")

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Valid(data []byte) bool {
	return json.Valid(data)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func NewEncoder(w io.Writer) *json.Encoder {
	return json.NewEncoder(w)
}

// String encodes s as a JSON string without escaping HTML characters.
func String(s string) RawMessage {
	var buf bytes.Buffer
	buf.Grow(len(s) + 2)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// Literal parses text as exactly one JSON value and returns it compacted.
func Literal(text string) (RawMessage, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(strings.NewReader(text))

	var raw RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}

	var res bytes.Buffer
	res.Grow(len(raw))
	if err := json.Compact(&res, raw); err != nil {
		return nil, err
	}

	return res.Bytes(), nil
}
