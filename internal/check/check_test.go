package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/pipeline"
	"github.com/radixlang/radix/internal/session"
)

func analyze(t *testing.T, src string) *pipeline.Context {
	t.Helper()
	sess := session.New()
	ctx := &pipeline.Context{
		Session: sess,
		File:    sess.Sources.AddFile("test.rdx", src),
		Diags:   &diagnostics.Bag{},
	}
	return pipeline.New(
		pipeline.LexProcessor{},
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.LowerProcessor{},
		pipeline.CheckProcessor{},
	).Run(ctx)
}

func errorCodes(ctx *pipeline.Context) []string {
	var out []string
	for _, d := range ctx.Diags.All() {
		if d.Severity == diagnostics.Error {
			out = append(out, d.Code)
		}
	}
	return out
}

func TestSimpleFunctionChecks(t *testing.T) {
	ctx := analyze(t, "functio add(a: Numerus, b: Numerus) -> Numerus { redde a + b }")
	assert.Empty(t, errorCodes(ctx))
}

func TestNumericWidening(t *testing.T) {
	// fixum x = 1 + 2.5 must infer Fractus for x, with no errors
	ctx := analyze(t, "functio f() {\n    fixum x = 1 + 2.5\n}")
	require.Empty(t, errorCodes(ctx))

	fn := ctx.HIR.Items[0].Func
	let := fn.Body.Stmts[0]
	require.Equal(t, hir.StmtLet, let.Kind)
	assert.Equal(t, "Fractus", ctx.Session.Types.String(let.Bind.Type))
}

func TestTypeMismatchReported(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    fixum x: Textus = 1\n}")
	assert.Contains(t, errorCodes(ctx), "SEM010")
}

func TestCallArity(t *testing.T) {
	ctx := analyze(t, "functio g(a: Numerus) { redde }\nfunctio f() {\n    g(1, 2)\n}")
	assert.Contains(t, errorCodes(ctx), "SEM013")
}

func TestForwardReferenceAllowed(t *testing.T) {
	ctx := analyze(t, "functio f() -> Numerus { redde g() }\nfunctio g() -> Numerus { redde 1 }")
	assert.Empty(t, errorCodes(ctx))
}

func TestUndefinedNameReported(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    fixum x = ignotumNomen\n}")
	assert.Contains(t, errorCodes(ctx), "SEM001")
}

func TestImmutableAssignment(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    fixum x = 1\n    x = 2\n}")
	assert.Contains(t, errorCodes(ctx), "SEM016")
}

func TestMutableAssignmentAllowed(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    varia x = 1\n    x = 2\n}")
	assert.Empty(t, errorCodes(ctx))
}

func TestBreakOutsideLoop(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    discede\n}")
	assert.Contains(t, errorCodes(ctx), "SEM020")
}

func TestBreakInsideLoopAllowed(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    dum verum {\n        discede\n    }\n}")
	assert.Empty(t, errorCodes(ctx))
}

func TestMemberAccess(t *testing.T) {
	src := `genus Punctum {
    x: Numerus
    y: Numerus
}

functio f(p: Punctum) -> Numerus {
    redde p.x + p.y
}`
	ctx := analyze(t, src)
	assert.Empty(t, errorCodes(ctx))
}

func TestUnknownMemberReported(t *testing.T) {
	src := `genus Punctum {
    x: Numerus
}

functio f(p: Punctum) -> Numerus {
    redde p.z
}`
	ctx := analyze(t, src)
	assert.Contains(t, errorCodes(ctx), "SEM012")
}

func TestConditionMustBeBool(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    si 1 {\n        redde\n    }\n}")
	assert.Contains(t, errorCodes(ctx), "SEM010")
}

func TestListElementUnification(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    fixum xs = [1, 2, 3]\n}")
	require.Empty(t, errorCodes(ctx))
	let := ctx.HIR.Items[0].Func.Body.Stmts[0]
	assert.Equal(t, "lista<Numerus>", ctx.Session.Types.String(ctx.Session.Types.ResolveAlias(let.Bind.Type)))
}

func TestForInElementType(t *testing.T) {
	src := `functio sum(xs: Numerus[]) -> Numerus {
    varia total = 0
    pro x in xs {
        total = total + x
    }
    redde total
}`
	ctx := analyze(t, src)
	assert.Empty(t, errorCodes(ctx))
}

func TestMatchArmsShareType(t *testing.T) {
	src := `discretio Color { Red Green Blue }

functio nomen(c: Color) -> Textus {
    discerne c {
        casu Color.Red { redde "ruber" }
        casu Color.Green { redde "viridis" }
        casu Color.Blue { redde "caeruleus" }
    }
    redde ""
}`
	ctx := analyze(t, src)
	assert.Empty(t, errorCodes(ctx))
}

func TestMethodReceiverBinding(t *testing.T) {
	src := `genus Punctum {
    x: Numerus
    y: Numerus

    functio summa() -> Numerus {
        redde hoc.x + hoc.y
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, errorCodes(ctx))
}
