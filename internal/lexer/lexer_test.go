package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/lexer"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/token"
)

func lex(t *testing.T, input string) ([]token.Token, []*diagnostics.Diagnostic) {
	t.Helper()
	file := source.NewMap().AddFile("test.rdx", input)
	return lexer.New(file).Tokenize()
}

func kinds(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestNumericForms(t *testing.T) {
	toks, errs := lex(t, "0xFF 0b1010 1_000 3.14e2")
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.INT, token.INT, token.INT, token.FLOAT, token.EOF}, kinds(toks))
	assert.Equal(t, int64(255), toks[0].Literal)
	assert.Equal(t, int64(10), toks[1].Literal)
	assert.Equal(t, int64(1000), toks[2].Literal)
	assert.Equal(t, 314.0, toks[3].Literal)
}

func TestOctalAndFloatWithoutExponent(t *testing.T) {
	toks, errs := lex(t, "0o17 2.5")
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.INT, token.FLOAT, token.EOF}, kinds(toks))
	assert.Equal(t, int64(15), toks[0].Literal)
	assert.Equal(t, 2.5, toks[1].Literal)
}

func TestOperatorsLongestMatch(t *testing.T) {
	cases := []struct {
		input string
		want  []token.Type
	}{
		{"== === != !==", []token.Type{token.EQ, token.EQ, token.NOT_EQ, token.NOT_EQ, token.EOF}},
		{"<= >= << >>", []token.Type{token.LTE, token.GTE, token.LSHIFT, token.RSHIFT, token.EOF}},
		{"&& || ?? ?.", []token.Type{token.AND, token.OR, token.NULL_COALESCE, token.OPTIONAL_CHAIN, token.EOF}},
		{"+= -= *= /=", []token.Type{token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.EOF}},
		{"-> .. ... .", []token.Type{token.ARROW, token.DOT_DOT, token.ELLIPSIS, token.DOT, token.EOF}},
		{"?[ ?( !. ![ !(", []token.Type{token.OPTIONAL_INDEX, token.OPTIONAL_CALL, token.NONNULL_CHAIN, token.NONNULL_INDEX, token.NONNULL_CALL, token.EOF}},
	}
	for _, tc := range cases {
		toks, errs := lex(t, tc.input)
		require.Empty(t, errs, "input %q", tc.input)
		assert.Equal(t, tc.want, kinds(toks), "input %q", tc.input)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := lex(t, "functio redde Color fixum _tmp")
	require.Empty(t, errs)
	assert.Equal(t, []token.Type{token.FUNCTIO, token.REDDE, token.IDENT_UPPER, token.FIXUM, token.IDENT, token.EOF}, kinds(toks))
}

func TestAnnotationModeDisablesKeywords(t *testing.T) {
	// after '@', identifiers are never keywords until the next newline
	toks, errs := lex(t, "@functio redde\nredde")
	require.Empty(t, errs)
	assert.Equal(t, []token.Type{token.IDENT, token.IDENT, token.REDDE, token.EOF}, kinds(toks))
}

func TestCommentsAreDiscarded(t *testing.T) {
	input := "# line comment\n// another\n/* block /* nested */ still */ 42"
	toks, errs := lex(t, input)
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.INT, token.EOF}, kinds(toks))
	assert.Equal(t, int64(42), toks[0].Literal)
}

func TestStringForms(t *testing.T) {
	// single- and double-quoted strings are the same plain form; "${"
	// in either is literal text, never interpolation
	toks, errs := lex(t, `"plain" 'salve mundi' "with ${x} inside"`)
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.STRING, token.STRING, token.STRING, token.EOF}, kinds(toks))
	assert.Equal(t, "plain", toks[0].Literal)
	assert.Equal(t, "salve mundi", toks[1].Literal)
	assert.Equal(t, "with ${x} inside", toks[2].Literal)
}

func TestTripleQuotedString(t *testing.T) {
	toks, errs := lex(t, "\"\"\"\nuna\nduo\n\"\"\"")
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.STRING, token.EOF}, kinds(toks))
	// newlines preserved, one leading and one trailing trimmed
	assert.Equal(t, "una\nduo", toks[0].Literal)
}

func TestStringEscapes(t *testing.T) {
	toks, errs := lex(t, `"a\nb\tc"`)
	require.Empty(t, errs)
	assert.Equal(t, "a\nb\tc", toks[0].Literal)

	toks, errs = lex(t, `'non\'est'`)
	require.Empty(t, errs)
	assert.Equal(t, "non'est", toks[0].Literal)
}

func TestTemplateString(t *testing.T) {
	toks, errs := lex(t, "`hello ${name}`")
	require.Empty(t, errs)
	require.Equal(t, token.TEMPLATE_STRING, toks[0].Type)
	assert.Equal(t, "hello ${name}", toks[0].Literal)
}

func TestTemplateInterpolationBraceDepth(t *testing.T) {
	// nested braces inside a hole do not end it early
	toks, errs := lex(t, "`a ${f({clavis: 1})} b`")
	require.Empty(t, errs)
	require.Equal(t, []token.Type{token.TEMPLATE_STRING, token.EOF}, kinds(toks))
	assert.Equal(t, "a ${f({clavis: 1})} b", toks[0].Literal)
}

func TestUnterminatedStringRecovers(t *testing.T) {
	toks, errs := lex(t, `"oops`)
	require.Len(t, errs, 1)
	assert.Equal(t, "LEX001", errs[0].Code)
	// lexing still produced a token stream ending in EOF
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
}

func TestUnexpectedCharacterRecovers(t *testing.T) {
	toks, errs := lex(t, "1 §x 2")
	_ = toks
	// '§' switches to section mode rather than erroring; a genuinely
	// unknown byte does error
	toks2, errs2 := lex(t, "1 $ 2")
	require.Empty(t, errs)
	require.Len(t, errs2, 1)
	assert.Equal(t, "LEX005", errs2[0].Code)
	// both surrounding numbers still lexed
	assert.Equal(t, token.INT, toks2[0].Type)
	assert.Equal(t, token.INT, toks2[2].Type)
}

func TestSemicolonIsTrivia(t *testing.T) {
	toks, errs := lex(t, "redde 1;")
	require.Empty(t, errs)
	assert.Equal(t, []token.Type{token.REDDE, token.INT, token.EOF}, kinds(toks))
}

// TestTokenCoverage asserts the span-reconstruction property: token
// spans are ascending, non-overlapping and inside the input, and the
// tokens plus the gaps between them rebuild the input exactly.
func TestTokenCoverage(t *testing.T) {
	input := "functio add(a: Numerus, b: Numerus) -> Numerus {\n    # comment\n    redde a + b\n}\n"
	toks, errs := lex(t, input)
	require.Empty(t, errs)

	prevEnd := 0
	var rebuilt strings.Builder
	for _, tok := range toks {
		if tok.Type == token.EOF {
			break
		}
		require.GreaterOrEqual(t, tok.Span.Start, prevEnd, "overlapping span for %v", tok)
		require.LessOrEqual(t, tok.Span.End, len(input))
		rebuilt.WriteString(input[prevEnd:tok.Span.Start]) // trivia gap
		rebuilt.WriteString(input[tok.Span.Start:tok.Span.End])
		prevEnd = tok.Span.End
	}
	rebuilt.WriteString(input[prevEnd:])
	assert.Equal(t, input, rebuilt.String())
}
