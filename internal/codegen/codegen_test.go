package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/codegen"
	"github.com/radixlang/radix/internal/config"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/pipeline"
	"github.com/radixlang/radix/internal/session"
)

// compile runs the front half of the pipeline and returns the context,
// failing the test on any error diagnostic.
func compile(t *testing.T, src string) *pipeline.Context {
	t.Helper()
	sess := session.New()
	ctx := &pipeline.Context{
		Session: sess,
		File:    sess.Sources.AddFile("test.rdx", src),
		Diags:   &diagnostics.Bag{},
	}
	pipeline.New(
		pipeline.LexProcessor{},
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.LowerProcessor{},
		pipeline.CheckProcessor{},
	).Run(ctx)
	for _, d := range ctx.Diags.All() {
		if d.Severity == diagnostics.Error {
			t.Fatalf("compile error %s: %s", d.Code, d.Message)
		}
	}
	return ctx
}

func emit(t *testing.T, target, src string) string {
	t.Helper()
	ctx := compile(t, src)
	em, err := codegen.New(target, ctx.Session.Types, ctx.Session.Interner, ctx.Diags)
	require.NoError(t, err)
	out, err := em.Emit(ctx.HIR)
	require.NoError(t, err)
	return out
}

func TestUnknownTargetRejected(t *testing.T) {
	sess := session.New()
	_, err := codegen.New("cobol", sess.Types, sess.Interner, &diagnostics.Bag{})
	assert.Error(t, err)
}

const addSrc = "functio add(a: Numerus, b: Numerus) -> Numerus { redde a + b }"

func TestCanonicalFunction(t *testing.T) {
	out := emit(t, config.TargetCanonical, addSrc)
	assert.Contains(t, out, "functio add(a: Numerus, b: Numerus) -> Numerus {")
	assert.Contains(t, out, "redde (a + b);")
}

// TestCanonicalIdempotence is the §8 round-trip property: emitting,
// re-parsing the emitted source, and emitting again is byte-stable.
func TestCanonicalIdempotence(t *testing.T) {
	sources := []string{
		addSrc,
		"discretio Color {\n    Red\n    Green\n    Blue\n}",
		"functio f(c: Numerus) -> Numerus {\n    si c > 1 {\n        redde c\n    }\n    redde 0\n}",
		"functio f() {\n    varia i = 0\n    dum i < 10 {\n        i += 1\n    }\n}",
		"functio saluta(nomen: Textus) -> Textus {\n    redde `salve ${nomen}`\n}",
	}
	for _, src := range sources {
		first := emit(t, config.TargetCanonical, src)
		second := emit(t, config.TargetCanonical, first)
		assert.Equal(t, first, second, "canonical emit not idempotent for %q", src)
	}
}

const resultEnum = `discretio Result {
    Ok(value: Numerus)
    Err(msg: Textus)
}`

func TestStructuralTaggedUnion(t *testing.T) {
	out := emit(t, config.TargetStructural, resultEnum)
	assert.Contains(t, out, "type Ok = { tag: 'Ok'; value: number };")
	assert.Contains(t, out, "type Err = { tag: 'Err'; msg: string };")
	assert.Contains(t, out, "type Result = Ok | Err;")
}

func TestSystemsTaggedUnion(t *testing.T) {
	out := emit(t, config.TargetSystems, resultEnum)
	assert.Contains(t, out, "#[derive(Debug, Clone)]")
	assert.Contains(t, out, "enum Result {")
	assert.Contains(t, out, "Ok { value: i64 },")
	assert.Contains(t, out, "Err { msg: String },")
}

func TestSystemsFunction(t *testing.T) {
	out := emit(t, config.TargetSystems, addSrc)
	assert.Contains(t, out, "fn add(a: i64, b: i64) -> i64 {")
	assert.Contains(t, out, "return (a + b);")
	assert.Contains(t, out, "use std::collections::{HashMap, HashSet};")
}

func TestStructuralFunction(t *testing.T) {
	out := emit(t, config.TargetStructural, addSrc)
	assert.Contains(t, out, "function add(a: number, b: number): number {")
	assert.Contains(t, out, "return (a + b);")
}

func TestStructuralClassWithConstructor(t *testing.T) {
	src := `genus Punctum {
    x: Numerus
    y: Numerus
}`
	out := emit(t, config.TargetStructural, src)
	assert.Contains(t, out, "class Punctum {")
	assert.Contains(t, out, "x: number;")
	assert.Contains(t, out, "constructor(overrides: { x?: number, y?: number } = {}) {")
	assert.Contains(t, out, "if (overrides.x !== undefined) { this.x = overrides.x; }")
}

func TestSystemsStructAndImpl(t *testing.T) {
	src := `genus Punctum {
    x: Numerus

    functio duplum() -> Numerus { redde 2 }
}`
	out := emit(t, config.TargetSystems, src)
	assert.Contains(t, out, "struct Punctum {")
	assert.Contains(t, out, "x: i64,")
	assert.Contains(t, out, "impl Punctum {")
	assert.Contains(t, out, "fn duplum(&self) -> i64 {")
}

func TestSystemsMatch(t *testing.T) {
	src := `discretio Color { Red Green Blue }

functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu _ { redde }
    }
}`
	out := emit(t, config.TargetSystems, src)
	assert.Contains(t, out, "match c {")
	assert.Contains(t, out, "Color::Red => {")
	assert.Contains(t, out, "_ => {")
}

func TestStructuralMatchCascade(t *testing.T) {
	src := `discretio Color { Red Green Blue }

functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu _ { redde }
    }
}`
	out := emit(t, config.TargetStructural, src)
	assert.Contains(t, out, "if (c.tag === 'Red') {")
	assert.Contains(t, out, "else {")
}

func TestStructuralVariantBindingExtraction(t *testing.T) {
	src := resultEnum + `

functio f(r: Result) -> Numerus {
    discerne r {
        casu Result.Ok(value) { redde value }
        casu Result.Err(msg) { redde 0 }
    }
    redde 0
}`
	out := emit(t, config.TargetStructural, src)
	assert.Contains(t, out, "const value = r.value;")
}

func TestSystemsVariantFieldPattern(t *testing.T) {
	src := resultEnum + `

functio f(r: Result) -> Numerus {
    discerne r {
        casu Result.Ok(value) { redde value }
        casu Result.Err(msg) { redde 0 }
    }
    redde 0
}`
	out := emit(t, config.TargetSystems, src)
	assert.Contains(t, out, "Result::Ok { value } => {")
	assert.Contains(t, out, "Result::Err { msg } => {")
}

func TestSystemsOwnershipParams(t *testing.T) {
	src := "functio f(a: de Numerus[], b: in Numerus[]) { redde }"
	out := emit(t, config.TargetSystems, src)
	assert.Contains(t, out, "a: &Vec<i64>")
	assert.Contains(t, out, "b: &mut Vec<i64>")
}

func TestSystemsKeywordEscape(t *testing.T) {
	src := "functio f(match: Numerus) -> Numerus { redde match }"
	out := emit(t, config.TargetSystems, src)
	assert.Contains(t, out, "r#match")
}

func TestWordFormOperatorTranslation(t *testing.T) {
	src := "functio f(a: Bivalens, b: Bivalens) -> Bivalens { redde a et b aut a }"
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, "&&")
	assert.Contains(t, rust, "||")
	ts := emit(t, config.TargetStructural, src)
	assert.Contains(t, ts, "&&")
	assert.Contains(t, ts, "||")
}

func TestMethodNameTranslation(t *testing.T) {
	src := `functio f(xs: Numerus[]) {
    xs.adde(1)
}`
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, "xs.push(1)")
	ts := emit(t, config.TargetStructural, src)
	assert.Contains(t, ts, "xs.push(1)")
}

func TestEntryBlockEmission(t *testing.T) {
	src := "exordium {\n    fixum x = 1\n}"
	canon := emit(t, config.TargetCanonical, src)
	assert.Contains(t, canon, "exordium {")
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, "fn main() {")
}

func TestStructuralOptionalChainPreserved(t *testing.T) {
	src := `genus Cella {
    valor: Numerus
}

functio f(c: si Cella) {
    fixum v = c?.valor
}`
	out := emit(t, config.TargetStructural, src)
	assert.Contains(t, out, "c?.valor")
}
func TestReceiverSpellingPerTarget(t *testing.T) {
	src := `genus Punctum {
    x: Numerus

    functio valor() -> Numerus {
        redde hoc.x
    }
}`
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, "return self.x;")
	ts := emit(t, config.TargetStructural, src)
	assert.Contains(t, ts, "return this.x;")
	canon := emit(t, config.TargetCanonical, src)
	assert.Contains(t, canon, "redde hoc.x;")
}

func TestTemplateTranslation(t *testing.T) {
	src := "functio saluta(nomen: Textus) -> Textus {\n    redde `salve ${nomen}`\n}"
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, `format!("salve {}", nomen)`)
	ts := emit(t, config.TargetStructural, src)
	assert.Contains(t, ts, "`salve ${nomen}`")
	canon := emit(t, config.TargetCanonical, src)
	assert.Contains(t, canon, "redde `salve ${nomen}`;")
}

func TestImportEmission(t *testing.T) {
	src := `importa "geometria" pro punctum, linea

functio f() -> Numerus { redde 1 }`
	canon := emit(t, config.TargetCanonical, src)
	assert.Contains(t, canon, `importa "geometria" pro punctum, linea`)
	ts := emit(t, config.TargetStructural, src)
	assert.Contains(t, ts, `import { punctum, linea } from "geometria";`)
	rust := emit(t, config.TargetSystems, src)
	assert.Contains(t, rust, "use geometria::{punctum, linea};")
}
