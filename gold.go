package fromrdf

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/piprate/json-gold/ld"
)

const goldDefaultGraph = "@default"

// TermFromGold converts a json-gold RDF node to a [Term].
//
// json-gold gives language-tagged literals the rdf:langString datatype. It's
// dropped, so the literal converts to a value object with @language.
func TermFromGold(node ld.Node) (Term, error) {
	switch n := node.(type) {
	case ld.IRI:
		return IRI{Value: n.Value}, nil
	case *ld.IRI:
		return IRI{Value: n.Value}, nil
	case ld.BlankNode:
		return BlankNode{ID: n.Attribute}, nil
	case *ld.BlankNode:
		return BlankNode{ID: n.Attribute}, nil
	case ld.Literal:
		return literalFromGold(n), nil
	case *ld.Literal:
		return literalFromGold(*n), nil
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrUnsupportedGoldNode)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGoldNode, node)
	}
}

func literalFromGold(l ld.Literal) Literal {
	res := Literal{
		Lexical:  l.Value,
		Datatype: l.Datatype,
		Language: l.Language,
	}

	if res.Language != "" && res.Datatype == RDFLangString {
		res.Datatype = ""
	}

	return res
}

// Statement is a converted quad.
//
// Graph is empty for the default graph.
type Statement struct {
	Graph     string
	Subject   ValueObject
	Predicate string
	Object    ValueObject
}

// FromDataset converts the subject and object of every quad in a json-gold
// dataset.
//
// The default graph comes first, followed by the named graphs in
// lexicographical order. Quads keep their order within a graph. Conversion
// stops at the first error, or when ctx is done.
func (p *Processor) FromDataset(
	ctx context.Context,
	dataset *ld.RDFDataset,
) ([]Statement, error) {
	if dataset == nil {
		return nil, nil
	}

	names := slices.SortedFunc(maps.Keys(dataset.Graphs), func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == goldDefaultGraph:
			return -1
		case b == goldDefaultGraph:
			return 1
		case a < b:
			return -1
		default:
			return 1
		}
	})

	var res []Statement
	for _, name := range names {
		graph := name
		if graph == goldDefaultGraph {
			graph = ""
		}

		for _, quad := range dataset.Graphs[name] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if quad == nil {
				continue
			}

			st, err := p.fromQuad(graph, quad)
			if err != nil {
				return nil, err
			}
			res = append(res, st)
		}
	}

	return res, nil
}

func (p *Processor) fromQuad(graph string, quad *ld.Quad) (Statement, error) {
	st := Statement{Graph: graph}

	if quad.Predicate != nil {
		st.Predicate = quad.Predicate.GetValue()
	}

	subj, err := TermFromGold(quad.Subject)
	if err != nil {
		return st, fmt.Errorf("subject: %w", err)
	}

	st.Subject, err = p.FromRDF(subj)
	if err != nil {
		return st, fmt.Errorf("subject: %w", err)
	}

	obj, err := TermFromGold(quad.Object)
	if err != nil {
		return st, fmt.Errorf("object of %s: %w", st.Predicate, err)
	}

	st.Object, err = p.FromRDF(obj)
	if err != nil {
		return st, fmt.Errorf("object of %s: %w", st.Predicate, err)
	}

	return st, nil
}
