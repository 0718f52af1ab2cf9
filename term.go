package fromrdf

import "fmt"

// TermKind identifies the kind of an RDF term.
type TermKind uint8

const (
	// TermIRI is an IRI reference.
	TermIRI TermKind = iota
	// TermBlankNode is a blank node identifier.
	TermBlankNode
	// TermLiteral is a literal.
	TermLiteral
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank node"
	case TermLiteral:
		return "literal"
	default:
		return fmt.Sprintf("TermKind(%d)", uint8(k))
	}
}

// Term is an RDF term that can be converted with [Processor.FromRDF].
//
// The only implementations this package knows how to convert are [IRI],
// [BlankNode] and [Literal].
type Term interface {
	Kind() TermKind
	String() string
}

// IRI is an absolute or relative IRI reference.
type IRI struct {
	Value string
}

func (i IRI) Kind() TermKind { return TermIRI }

func (i IRI) String() string { return i.Value }

// BlankNode is a blank node identifier.
//
// The ID is used as-is. It typically starts with [BlankNodePrefix], but
// that's not enforced.
type BlankNode struct {
	ID string
}

func (b BlankNode) Kind() TermKind { return TermBlankNode }

func (b BlankNode) String() string { return b.ID }

// Literal is an RDF literal.
//
// An empty Datatype or Language means it's absent. A well-formed literal
// doesn't have both a Language and a Datatype other than rdf:langString, but
// conversion doesn't reject it.
type Literal struct {
	Lexical  string
	Datatype string
	Language string
}

// NewLiteral returns a typed literal.
func NewLiteral(lexical, datatype string) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, language string) Literal {
	return Literal{Lexical: lexical, Language: language}
}

func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the literal in N-Triples like notation.
func (l Literal) String() string {
	if l.Language != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Language)
	}
	if l.Datatype != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype)
	}
	return fmt.Sprintf("%q", l.Lexical)
}
