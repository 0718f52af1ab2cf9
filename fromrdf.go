package fromrdf

import "fmt"

// FromRDF converts a single RDF term to its JSON-LD representation.
//
// IRIs and blank nodes become a node reference with only an @id. Literals
// become a value object, based on the options the processor was created with.
//
// The returned error is a [*LiteralError] matching [ErrInvalidNumericLiteral]
// or [ErrInvalidJSONLiteral] if the literal can't be converted, or
// [ErrUnsupportedTerm] for a nil or unknown [Term]. No value object is
// returned together with an error.
func (p *Processor) FromRDF(term Term) (ValueObject, error) {
	switch t := term.(type) {
	case IRI:
		// 1)
		return ValueObject{ID: t.Value}, nil
	case BlankNode:
		// 1)
		return ValueObject{ID: t.ID}, nil
	case Literal:
		// 2)
		res, err := p.coerce(t)
		if err != nil {
			return ValueObject{}, err
		}
		return res.assemble(), nil
	case nil:
		return ValueObject{}, fmt.Errorf("%w: nil term", ErrUnsupportedTerm)
	default:
		return ValueObject{}, fmt.Errorf("%w: %T", ErrUnsupportedTerm, term)
	}
}
