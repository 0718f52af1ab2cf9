package fromrdf_test

import (
	"bytes"
	"testing"

	fr "sourcery.dny.nu/fromrdf"
	"sourcery.dny.nu/fromrdf/internal/json"
)

func TestValueObjectMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   fr.ValueObject
		want string
	}{
		{name: "reference", in: fr.ValueObject{ID: "_:b0"}, want: `{"@id":"_:b0"}`},
		{name: "empty reference", in: fr.ValueObject{}, want: `{"@id":""}`},
		{name: "plain", in: fr.ValueObject{Value: json.RawMessage(`42`)}, want: `{"@value":42}`},
		{name: "typed", in: fr.ValueObject{Value: json.RawMessage(`"maybe"`), Type: fr.XSDBoolean}, want: `{"@value":"maybe","@type":"http://www.w3.org/2001/XMLSchema#boolean"}`},
		{name: "json", in: fr.ValueObject{Value: json.RawMessage(`{"b":1,"a":2}`), Type: fr.KeywordJSON}, want: `{"@value":{"b":1,"a":2},"@type":"@json"}`},
		{name: "language", in: fr.ValueObject{Value: json.RawMessage(`"Bonjour"`), Language: "fr"}, want: `{"@value":"Bonjour","@language":"fr"}`},
		{name: "direction", in: fr.ValueObject{Value: json.RawMessage(`"Hello"`), Direction: fr.DirectionRTL}, want: `{"@value":"Hello","@direction":"rtl"}`},
		{name: "language and direction", in: fr.ValueObject{Value: json.RawMessage(`"Hello"`), Language: "en", Direction: fr.DirectionLTR}, want: `{"@value":"Hello","@language":"en","@direction":"ltr"}`},
		{name: "no html escaping", in: fr.ValueObject{Value: json.RawMessage(`"<b>"`), Language: "en&"}, want: `{"@value":"<b>","@language":"en&"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}

			if string(got) != tt.want {
				t.Errorf("expected: %s, got: %s", tt.want, got)
			}
		})
	}
}

func TestValueObjectMarshalInSlice(t *testing.T) {
	in := []fr.ValueObject{
		{ID: "https://example.org/alice"},
		{Value: json.RawMessage(`true`)},
	}

	got, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	want := `[{"@id":"https://example.org/alice"},{"@value":true}]`
	if string(got) != want {
		t.Errorf("expected: %s, got: %s", want, got)
	}
}

func TestValueObjectPredicates(t *testing.T) {
	tests := []struct {
		name      string
		in        fr.ValueObject
		reference bool
		value     bool
		zero      bool
	}{
		{name: "zero", in: fr.ValueObject{}, reference: true, zero: true},
		{name: "reference", in: fr.ValueObject{ID: "_:b0"}, reference: true},
		{name: "plain", in: fr.ValueObject{Value: json.RawMessage(`1`)}, value: true},
		{name: "typed", in: fr.ValueObject{Value: json.RawMessage(`"1"`), Type: fr.XSDInteger}, value: true},
		{name: "language", in: fr.ValueObject{Value: json.RawMessage(`"a"`), Language: "en"}, value: true},
		{name: "type and language", in: fr.ValueObject{Value: json.RawMessage(`"a"`), Type: fr.XSDString, Language: "en"}},
		{name: "id and value", in: fr.ValueObject{ID: "_:b0", Value: json.RawMessage(`1`)}},
		{name: "type without value", in: fr.ValueObject{Type: fr.XSDString}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.IsReference(); got != tt.reference {
				t.Errorf("IsReference: expected %t, got %t", tt.reference, got)
			}
			if got := tt.in.IsValue(); got != tt.value {
				t.Errorf("IsValue: expected %t, got %t", tt.value, got)
			}
			if got := tt.in.IsZero(); got != tt.zero {
				t.Errorf("IsZero: expected %t, got %t", tt.zero, got)
			}
		})
	}
}

func TestValueObjectHas(t *testing.T) {
	v := fr.ValueObject{Value: json.RawMessage(`"Hello"`), Language: "en"}

	for prop, want := range map[string]bool{
		fr.KeywordValue:     true,
		fr.KeywordLanguage:  true,
		fr.KeywordDirection: false,
		fr.KeywordType:      false,
		fr.KeywordID:        false,
		fr.KeywordJSON:      false,
		"https://example.org/p": false,
	} {
		if got := v.Has(prop); got != want {
			t.Errorf("Has(%s): expected %t, got %t", prop, want, got)
		}
	}
}

func TestValueObjectHTMLEscaping(t *testing.T) {
	v := fr.ValueObject{Value: json.RawMessage(`"<b>&"`)}

	escaped, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"@value":"\u003cb\u003e\u0026"}`; string(escaped) != want {
		t.Errorf("expected: %s, got: %s", want, escaped)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		t.Fatal(err)
	}
	if want := `{"@value":"<b>&"}` + "\n"; buf.String() != want {
		t.Errorf("expected: %s, got: %s", want, buf.String())
	}
}
