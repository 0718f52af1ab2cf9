package fromrdf

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"sourcery.dny.nu/fromrdf/internal/json"
)

// note is what accompanies a converted value. It's one of plain, typed or
// directional, which keeps @type and @language/@direction apart.
type note interface {
	annotate(*ValueObject)
}

type plain struct{}

func (plain) annotate(*ValueObject) {}

type typed struct {
	iri string
}

func (t typed) annotate(v *ValueObject) {
	v.Type = t.iri
}

type directional struct {
	language  string
	direction string
}

func (d directional) annotate(v *ValueObject) {
	v.Language = d.language
	v.Direction = d.direction
}

type coerced struct {
	value json.RawMessage
	note  note
}

// assemble builds the value object for a converted literal.
func (c coerced) assemble() ValueObject {
	res := ValueObject{Value: c.value}
	c.note.annotate(&res)
	return res
}

// coerce converts a literal to its JSON-LD value.
//
// The cases are evaluated in order and the first one that matches wins.
func (p *Processor) coerce(lit Literal) (coerced, error) {
	switch {
	case p.nativeTypes && lit.Datatype != "":
		// 2.4)
		return p.coerceNative(lit)
	case !p.modeLD10 && lit.Datatype != "" && lit.Datatype == p.vocab.RDFJSON:
		// 2.5)
		return coerceJSON(lit)
	case p.rdfDirection == RDFDirectionI18NDatatype &&
		lit.Datatype != "" &&
		strings.HasPrefix(lit.Datatype, p.vocab.I18NBase):
		// 2.6)
		return p.coerceI18N(lit), nil
	case lit.Language != "":
		// 2.7)
		return coerced{
			value: json.String(lit.Lexical),
			note:  directional{language: lit.Language},
		}, nil
	case lit.Datatype != "" && lit.Datatype != p.vocab.XSDString:
		// 2.8)
		return coerced{
			value: json.String(lit.Lexical),
			note:  typed{iri: lit.Datatype},
		}, nil
	default:
		return coerced{value: json.String(lit.Lexical), note: plain{}}, nil
	}
}

func (p *Processor) coerceNative(lit Literal) (coerced, error) {
	switch lit.Datatype {
	case p.vocab.XSDString:
		// 2.4.1)
		return coerced{value: json.String(lit.Lexical), note: plain{}}, nil
	case p.vocab.XSDBoolean:
		// 2.4.2)
		switch {
		case strings.EqualFold(lit.Lexical, "true"):
			return coerced{value: json.RawMessage("true"), note: plain{}}, nil
		case strings.EqualFold(lit.Lexical, "false"):
			return coerced{value: json.RawMessage("false"), note: plain{}}, nil
		default:
			p.logger.Warn("malformed boolean literal kept as typed value",
				slog.String("lexical", lit.Lexical))
			return coerced{
				value: json.String(lit.Lexical),
				note:  typed{iri: lit.Datatype},
			}, nil
		}
	case p.vocab.XSDInteger:
		// 2.4.3)
		i, err := strconv.ParseInt(lit.Lexical, 10, 64)
		if err != nil {
			return coerced{}, &LiteralError{
				Lexical:  lit.Lexical,
				Datatype: lit.Datatype,
				Kind:     ErrInvalidNumericLiteral,
				Err:      err,
			}
		}
		return coerced{
			value: strconv.AppendInt(nil, i, 10),
			note:  plain{},
		}, nil
	case p.vocab.XSDDouble:
		// 2.4.3)
		f, err := parseDouble(lit.Lexical)
		if err != nil {
			return coerced{}, &LiteralError{
				Lexical:  lit.Lexical,
				Datatype: lit.Datatype,
				Kind:     ErrInvalidNumericLiteral,
				Err:      err,
			}
		}
		// finite floats always marshal
		raw, _ := json.Marshal(f)
		return coerced{value: raw, note: plain{}}, nil
	default:
		// 2.4.4)
		return coerced{
			value: json.String(lit.Lexical),
			note:  typed{iri: lit.Datatype},
		}, nil
	}
}

func coerceJSON(lit Literal) (coerced, error) {
	raw, err := json.Literal(lit.Lexical)
	if err != nil {
		return coerced{}, &LiteralError{
			Lexical:  lit.Lexical,
			Datatype: lit.Datatype,
			Kind:     ErrInvalidJSONLiteral,
			Err:      err,
		}
	}

	return coerced{value: raw, note: typed{iri: KeywordJSON}}, nil
}

func (p *Processor) coerceI18N(lit Literal) coerced {
	res := coerced{value: json.String(lit.Lexical)}

	langID := strings.TrimPrefix(lit.Datatype, p.vocab.I18NBase)
	idx := strings.IndexByte(langID, '_')

	switch {
	case idx == -1:
		res.note = directional{language: langID}
	case idx == 0:
		res.note = directional{direction: langID[1:]}
	case utf8.RuneCountInString(langID[:idx]) > 1:
		res.note = directional{language: langID[:idx], direction: langID[idx+1:]}
	default:
		// A single character language tag. This emits neither language nor
		// direction.
		p.logger.Warn("i18n datatype with single character language ignored",
			slog.String("datatype", lit.Datatype))
		res.note = plain{}
	}

	return res
}

// parseDouble parses a finite xsd:double. Only decimal digits with an
// optional fraction and exponent are accepted, so Go-only syntax like
// underscores, hex floats and Inf is rejected.
func parseDouble(s string) (float64, error) {
	if !isDoubleLexical(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	// overflow is reported as ErrRange
	return strconv.ParseFloat(s, 64)
}

func isDoubleLexical(s string) bool {
	i := skipSign(s, 0)

	start := i
	i = skipDigits(s, i)
	mantissa := i - start
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		i = skipDigits(s, i)
		mantissa += i - start
	}
	if mantissa == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i = skipSign(s, i+1)
		start = i
		i = skipDigits(s, i)
		if i == start {
			return false
		}
	}

	return i == len(s)
}

func skipSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
