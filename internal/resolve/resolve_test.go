package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/lexer"
	"github.com/radixlang/radix/internal/parser"
	"github.com/radixlang/radix/internal/resolve"
	"github.com/radixlang/radix/internal/source"
)

func run(t *testing.T, src string) (*resolve.Result, *diagnostics.Bag) {
	t.Helper()
	file := source.NewMap().AddFile("test.rdx", src)
	toks, lexErrs := lexer.New(file).Tokenize()
	diags := &diagnostics.Bag{}
	for _, e := range lexErrs {
		diags.Add(e)
	}
	prog := parser.New(file, toks, diags).ParseProgram()
	require.NotNil(t, prog)
	r := resolve.New(diags, intern.New())
	return r.Resolve(prog), diags
}

func codes(diags *diagnostics.Bag) []string {
	var out []string
	for _, d := range diags.All() {
		out = append(out, d.Code)
	}
	return out
}

func TestForwardReferenceBetweenTopLevelItems(t *testing.T) {
	_, diags := run(t, "functio f() -> Numerus { redde g() }\nfunctio g() -> Numerus { redde 1 }")
	assert.False(t, diags.HasErrors(), "diagnostics: %v", codes(diags))
}

func TestLocalsObeyTextualOrder(t *testing.T) {
	_, diags := run(t, "functio f() {\n    fixum a = b\n    fixum b = 1\n}")
	assert.Contains(t, codes(diags), "SEM001")
}

func TestUndefinedName(t *testing.T) {
	_, diags := run(t, "functio f() {\n    fixum x = nusquam\n}")
	assert.Contains(t, codes(diags), "SEM001")
}

func TestDuplicateTopLevelDefinition(t *testing.T) {
	_, diags := run(t, "functio f() { redde }\nfunctio f() { redde }")
	assert.Contains(t, codes(diags), "SEM002")
}

func TestParamsBindIntoFunctionScope(t *testing.T) {
	_, diags := run(t, "functio f(a: Numerus) -> Numerus { redde a }")
	assert.False(t, diags.HasErrors(), "diagnostics: %v", codes(diags))
}

func TestVariantPatternsResolveQualifiedAndBare(t *testing.T) {
	src := `discretio Color { Red Green Blue }

functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu Green { redde }
        casu _ { redde }
    }
}`
	_, diags := run(t, src)
	assert.False(t, diags.HasErrors(), "diagnostics: %v", codes(diags))
}

func TestImportRecordedSymbolically(t *testing.T) {
	res, diags := run(t, "importa \"mathesis\"\n\nfunctio f() { redde }")
	assert.False(t, diags.HasErrors(), "diagnostics: %v", codes(diags))
	require.Len(t, res.Imports, 1)
	assert.Equal(t, "mathesis", res.Imports[0].Path)
}

func TestEveryDefIdIsUnique(t *testing.T) {
	src := `discretio Color { Red Green Blue }

genus Punctum {
    x: Numerus
}

functio f(p: Punctum, c: Color) -> Numerus {
    fixum a = p.x
    redde a
}`
	res, diags := run(t, src)
	require.False(t, diags.HasErrors(), "diagnostics: %v", codes(diags))
	for id, def := range res.Defs {
		assert.Equal(t, id, def.ID)
	}
}
