package fromrdf

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid = errors.New("invalid")

	// ErrInvalidNumericLiteral is returned when native types are enabled and
	// an xsd:integer or xsd:double literal has a malformed lexical form.
	ErrInvalidNumericLiteral = fmt.Errorf("%w numeric literal", ErrInvalid)

	// ErrInvalidJSONLiteral is returned when an rdf:JSON literal doesn't
	// hold valid JSON.
	ErrInvalidJSONLiteral = fmt.Errorf("%w JSON literal", ErrInvalid)

	ErrInvalidRDFDirection = fmt.Errorf("%w rdf direction", ErrInvalid)

	ErrUnsupportedTerm     = errors.New("unsupported term")
	ErrUnsupportedGoldNode = errors.New("unsupported json-gold node")
)

// LiteralError is returned when a literal can't be converted.
//
// It matches its Kind with [errors.Is], as well as the underlying parse error
// if there is one.
type LiteralError struct {
	Lexical  string // Offending lexical form
	Datatype string // Datatype of the literal
	Kind     error  // ErrInvalidNumericLiteral or ErrInvalidJSONLiteral
	Err      error  // Underlying parse error, may be nil
}

func (e *LiteralError) Error() string {
	msg := fmt.Sprintf("%s: %q^^<%s>", e.Kind, e.Lexical, e.Datatype)
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *LiteralError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
