package fromrdf_test

import (
	"testing"

	fr "sourcery.dny.nu/fromrdf"
)

func BenchmarkFromRDF(b *testing.B) {
	benchmarks := []struct {
		name string
		opts []fr.ProcessorOption
		term fr.Term
	}{
		{name: "iri", term: fr.IRI{Value: "https://example.org/alice"}},
		{name: "language", term: fr.NewLangLiteral("Bonjour", "fr")},
		{name: "native integer", opts: []fr.ProcessorOption{fr.WithNativeTypes(true)}, term: fr.NewLiteral("1234567890", fr.XSDInteger)},
		{name: "native double", opts: []fr.ProcessorOption{fr.WithNativeTypes(true)}, term: fr.NewLiteral("3.14159e2", fr.XSDDouble)},
		{name: "json", term: fr.NewLiteral(`{"name":"Alice","tags":["a","b","c"],"nested":{"n":1.5}}`, fr.RDFJSON)},
		{name: "i18n", opts: []fr.ProcessorOption{fr.WithRDFDirection(fr.RDFDirectionI18NDatatype)}, term: fr.NewLiteral("Hello", fr.I18NBase+"en-US_rtl")},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			p := fr.NewProcessor(bm.opts...)

			for b.Loop() {
				if _, err := p.FromRDF(bm.term); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
