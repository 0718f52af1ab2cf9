package fromrdf

// Vocabulary holds the reserved IRIs conversion matches datatypes against.
//
// Use [DefaultVocabulary] unless you need to recognise alternate spellings,
// for example an https XML Schema namespace.
type Vocabulary struct {
	XSDString  string
	XSDBoolean string
	XSDInteger string
	XSDDouble  string
	RDFJSON    string
	I18NBase   string
}

// DefaultVocabulary returns the vocabulary defined by JSON-LD 1.1.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		XSDString:  XSDString,
		XSDBoolean: XSDBoolean,
		XSDInteger: XSDInteger,
		XSDDouble:  XSDDouble,
		RDFJSON:    RDFJSON,
		I18NBase:   I18NBase,
	}
}
