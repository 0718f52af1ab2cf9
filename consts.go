package fromrdf

const (
	// BlankNodePrefix is the prefix of blank node identifiers.
	BlankNodePrefix = "_:"
)

// Values for @direction.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// XML Schema datatypes with a native JSON representation.
const (
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	XSDBoolean = XSDNamespace + "boolean"
	XSDDouble  = XSDNamespace + "double"
	XSDInteger = XSDNamespace + "integer"
	XSDString  = XSDNamespace + "string"
)

// RDF datatypes.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	RDFJSON       = RDFNamespace + "JSON"
	RDFLangString = RDFNamespace + "langString"
)

// I18NBase is the prefix of datatypes that encode a language tag and a base
// direction, like https://www.w3.org/ns/i18n#en-US_rtl.
const I18NBase = "https://www.w3.org/ns/i18n#"

