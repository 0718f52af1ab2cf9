package fromrdf

import (
	"fmt"
	"log/slog"
)

// RDFDirection selects how base direction is encoded in RDF literals.
type RDFDirection string

const (
	// RDFDirectionNone leaves i18n datatypes alone; they're treated like any
	// other datatype.
	RDFDirectionNone RDFDirection = ""

	// RDFDirectionI18NDatatype decodes language and direction from datatypes
	// starting with [I18NBase].
	RDFDirectionI18NDatatype RDFDirection = "i18n-datatype"
)

// ParseRDFDirection parses the rdfDirection option value.
//
// The empty string and "null" are [RDFDirectionNone].
func ParseRDFDirection(s string) (RDFDirection, error) {
	switch s {
	case "", "null":
		return RDFDirectionNone, nil
	case string(RDFDirectionI18NDatatype):
		return RDFDirectionI18NDatatype, nil
	default:
		return RDFDirectionNone, fmt.Errorf("%w: %q", ErrInvalidRDFDirection, s)
	}
}

// ProcessorOption can be used to customise the behaviour of a [Processor].
type ProcessorOption func(*Processor)

// Processor converts RDF terms to JSON-LD.
//
// A Processor is never modified after [NewProcessor] returns, so it can be
// shared between goroutines. Your application should only need one for each
// set of options.
type Processor struct {
	modeLD10     bool
	nativeTypes  bool
	rdfDirection RDFDirection
	vocab        Vocabulary
	logger       *slog.Logger
}

// NewProcessor creates a new processor.
//
// By default:
//   - Processing mode is JSON-LD 1.1, so rdf:JSON literals are decoded. To
//     switch to JSON-LD 1.0, configure it with [With10Processing].
//   - Native types are not used. Enable them with [WithNativeTypes].
//   - The rdf direction is [RDFDirectionNone]. Set it with
//     [WithRDFDirection].
//   - The vocabulary is [DefaultVocabulary]. Set it with [WithVocabulary].
//   - Logger is [slog.DiscardHandler]. Set it with [WithLogger]. The logger is
//     only used to emit warnings.
func NewProcessor(options ...ProcessorOption) *Processor {
	p := &Processor{
		vocab:  DefaultVocabulary(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// With10Processing sets the processing mode to json-ld-1.0.
func With10Processing(b bool) ProcessorOption {
	return func(p *Processor) {
		p.modeLD10 = b
	}
}

// WithNativeTypes converts xsd:string, xsd:boolean, xsd:integer and
// xsd:double literals to native JSON values.
func WithNativeTypes(b bool) ProcessorOption {
	return func(p *Processor) {
		p.nativeTypes = b
	}
}

// WithRDFDirection sets how base direction is encoded in literals.
func WithRDFDirection(d RDFDirection) ProcessorOption {
	return func(p *Processor) {
		p.rdfDirection = d
	}
}

// WithVocabulary sets the reserved IRIs datatypes are matched against.
func WithVocabulary(v Vocabulary) ProcessorOption {
	return func(p *Processor) {
		p.vocab = v
	}
}

// WithLogger sets the logger that'll be used to emit warnings during
// conversion.
//
// Without a logger no warnings will be emitted when malformed booleans or i18n
// datatypes are encountered.
func WithLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = l
	}
}
