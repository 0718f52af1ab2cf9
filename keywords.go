package fromrdf

// JSON-LD keywords that can appear in a value object or node reference.
const (
	KeywordDirection = "@direction"
	KeywordID        = "@id"
	KeywordJSON      = "@json"
	KeywordLanguage  = "@language"
	KeywordType      = "@type"
	KeywordValue     = "@value"
)

// isKeyword returns if the string matches one of the keywords a
// [ValueObject] can hold.
func isKeyword(s string) bool {
	switch s {
	case KeywordDirection,
		KeywordID,
		KeywordLanguage,
		KeywordType,
		KeywordValue:
		return true
	default:
		return false
	}
}
