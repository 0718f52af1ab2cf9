// Package fromrdf converts RDF terms to their JSON-LD representation.
//
// This is the "RDF to Object Conversion" step of the JSON-LD Serialize RDF as
// JSON-LD algorithm. Create a [Processor] with [NewProcessor] and call
// [Processor.FromRDF] with an [IRI], [BlankNode] or [Literal]. IRIs and blank
// nodes turn into a node reference, literals into a value object. Both are
// returned as a [ValueObject]. If you serialise it to JSON you get JSON-LD
// Expanded Document Form, with keys in a fixed order.
//
// How literals are converted depends on the options:
//   - [WithNativeTypes] turns xsd:string, xsd:boolean, xsd:integer and
//     xsd:double literals into JSON strings, booleans and numbers.
//   - rdf:JSON literals are decoded into the JSON value they hold, unless
//     [With10Processing] is set.
//   - [WithRDFDirection] with [RDFDirectionI18NDatatype] decodes language and
//     base direction from https://www.w3.org/ns/i18n# datatypes.
//
// When you already use json-gold, [TermFromGold] and [Processor.FromDataset]
// convert its nodes and datasets.
//
// # JSON typing
//
// The @value is kept as an encoding/json RawMessage so no precision is lost.
// xsd:integer values are int64 and xsd:double values are float64 before
// they're encoded.
//
// # Errors
//
// Only two things can go wrong with a literal: a malformed xsd:integer or
// xsd:double lexical form when native types are used, and invalid JSON in an
// rdf:JSON literal. Both return a [*LiteralError] that holds the offending
// lexical form. Any other irregular literal, like an xsd:boolean that isn't
// true or false, is kept with its datatype.
package fromrdf
