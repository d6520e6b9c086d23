package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/lexer"
	"github.com/radixlang/radix/internal/parser"
	"github.com/radixlang/radix/internal/source"
)

func parse(t *testing.T, input string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	file := source.NewMap().AddFile("test.rdx", input)
	toks, lexErrs := lexer.New(file).Tokenize()
	diags := &diagnostics.Bag{}
	for _, e := range lexErrs {
		diags.Add(e)
	}
	p := parser.New(file, toks, diags)
	return p.ParseProgram(), diags
}

func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, diags := parse(t, input)
	require.NotNil(t, prog)
	for _, d := range diags.All() {
		t.Errorf("unexpected diagnostic %s: %s", d.Code, d.Message)
	}
	return prog
}

func TestFunctionDecl(t *testing.T) {
	prog := parseOK(t, "functio add(a: Numerus, b: Numerus) -> Numerus { redde a + b }")
	require.Len(t, prog.Statements, 1)
	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Value)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Value)
	require.NotNil(t, fn.ReturnType)
	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestPrecedence(t *testing.T) {
	prog := parseOK(t, "fixum x = 1 + 2 * 3")
	decl := prog.Statements[0].(*ast.VarDecl)
	outer, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, outer.Op)
	inner, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, inner.Op)
}

func TestWordFormOperators(t *testing.T) {
	prog := parseOK(t, "fixum x = verum et falsum aut verum")
	decl := prog.Statements[0].(*ast.VarDecl)
	outer := decl.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpOr, outer.Op)
	inner := outer.Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpAnd, inner.Op)
}

func TestTernary(t *testing.T) {
	prog := parseOK(t, "fixum x = verum ? 1 : 2")
	decl := prog.Statements[0].(*ast.VarDecl)
	_, ok := decl.Value.(*ast.TernaryExpr)
	assert.True(t, ok)
}

func TestEnumDecl(t *testing.T) {
	prog := parseOK(t, "discretio Color {\n    Red\n    Green\n    Blue\n}")
	en := prog.Statements[0].(*ast.EnumDecl)
	assert.Equal(t, "Color", en.Name.Value)
	require.Len(t, en.Variants, 3)
	assert.Equal(t, "Red", en.Variants[0].Name.Value)
}

func TestEnumVariantFields(t *testing.T) {
	prog := parseOK(t, "discretio Result {\n    Ok(value: Numerus)\n    Err(msg: Textus)\n}")
	en := prog.Statements[0].(*ast.EnumDecl)
	require.Len(t, en.Variants, 2)
	require.Len(t, en.Variants[0].Fields, 1)
	assert.Equal(t, "value", en.Variants[0].Fields[0].Name.Value)
}

func TestStructDecl(t *testing.T) {
	prog := parseOK(t, "genus Punctum {\n    x: Numerus\n    y: Numerus\n\n    functio norma() -> Numerus { redde 0 }\n}")
	st := prog.Statements[0].(*ast.StructDecl)
	assert.Equal(t, "Punctum", st.Name.Value)
	assert.Len(t, st.Fields, 2)
	assert.Len(t, st.Methods, 1)
}

func TestMatchStatement(t *testing.T) {
	src := `discretio Color { Red Green Blue }

functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu Color.Green, Color.Blue { redde }
        elige { redde }
    }
}`
	prog := parseOK(t, src)
	fn := prog.Statements[1].(*ast.FunctionDecl)
	m, ok := fn.Body.Statements[0].(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	assert.Len(t, m.Arms[1].Patterns, 2)
	assert.NotNil(t, m.DefaultArm)
}

func TestBodySugarErgo(t *testing.T) {
	prog := parseOK(t, "functio f(x: Numerus) ergo redde")
	fn := prog.Statements[0].(*ast.FunctionDecl)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)
}

func TestBodySugarReddit(t *testing.T) {
	prog := parseOK(t, "functio f(x: Numerus) -> Numerus reddit x + 1")
	fn := prog.Statements[0].(*ast.FunctionDecl)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)
	_, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestEntryDecl(t *testing.T) {
	prog := parseOK(t, "exordium {\n    fixum x = 1\n}")
	entry, ok := prog.Statements[0].(*ast.EntryDecl)
	require.True(t, ok)
	require.Len(t, entry.Body.Statements, 1)
}

func TestOwnershipPrefixTypes(t *testing.T) {
	prog := parseOK(t, "functio f(a: de Numerus[], b: in Numerus[]) { redde }")
	fn := prog.Statements[0].(*ast.FunctionDecl)
	ref0, ok := fn.Params[0].Type.(*ast.RefType)
	require.True(t, ok)
	assert.False(t, ref0.Mutable)
	ref1 := fn.Params[1].Type.(*ast.RefType)
	assert.True(t, ref1.Mutable)
}

func TestOptionalChainForms(t *testing.T) {
	prog := parseOK(t, "fixum a = x?.campus")
	decl := prog.Statements[0].(*ast.VarDecl)
	ch, ok := decl.Value.(*ast.ChainExpr)
	require.True(t, ok)
	assert.Equal(t, ast.ChainOptionalMember, ch.Kind)
}

func TestErrorRecovery(t *testing.T) {
	// two malformed declarations and one sound one: the parser keeps
	// going and reports at least one error per bad statement
	prog, diags := parse(t, "functio {\nfixum = 3\nfunctio ok(a: Numerus) { redde }")
	require.NotNil(t, prog)
	assert.True(t, diags.HasErrors())
	found := false
	for _, s := range prog.Statements {
		if fn, ok := s.(*ast.FunctionDecl); ok && fn.Name.Value == "ok" {
			found = true
		}
	}
	assert.True(t, found, "parser did not recover to parse the valid declaration")
}

// TestSpanMonotonicity asserts the §8 property that every parent node's
// span contains each child's span.
func TestSpanMonotonicity(t *testing.T) {
	src := `functio f(a: Numerus) -> Numerus {
    fixum y = a * 2
    si y > 3 {
        redde y
    }
    redde a
}`
	prog := parseOK(t, src)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	parent := fn.Span()
	ast.Walk(fn, func(n ast.Node) bool {
		sp := n.Span()
		if sp.Start == 0 && sp.End == 0 {
			return true // synthesized node with no span
		}
		assert.True(t, parent.Contains(sp), "node span %v escapes parent %v", sp, parent)
		return true
	})
}

func TestTemplateStringParts(t *testing.T) {
	prog := parseOK(t, "fixum s = `salve ${nomen} vale`")
	decl := prog.Statements[0].(*ast.VarDecl)
	tmpl, ok := decl.Value.(*ast.TemplateStringLiteral)
	require.True(t, ok)
	require.Len(t, tmpl.Parts, 3)
	lit, ok := tmpl.Parts[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "salve ", lit.Value)
	_, ok = tmpl.Parts[1].(*ast.Identifier)
	assert.True(t, ok)
}

func TestPlainStringHasNoParts(t *testing.T) {
	prog := parseOK(t, `fixum s = "salve ${nomen} vale"`)
	decl := prog.Statements[0].(*ast.VarDecl)
	lit, ok := decl.Value.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "salve ${nomen} vale", lit.Value)
}
