package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radixlang/radix/internal/diagnostics"
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
		pipeline.LintProcessor{},
	).Run(ctx)
}

func warnings(ctx *pipeline.Context, code string) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	for _, d := range ctx.Diags.All() {
		if d.Severity == diagnostics.Warning && d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestUnusedLocal(t *testing.T) {
	ctx := analyze(t, "functio f() {\n    fixum x = 1\n}")
	// x is never read (f itself is also reported unused)
	assert.GreaterOrEqual(t, len(warnings(ctx, "WARN001")), 2)
}

func TestUsedLocalNotReported(t *testing.T) {
	ctx := analyze(t, "functio f() -> Numerus {\n    fixum x = 1\n    redde x\n}")
	for _, w := range warnings(ctx, "WARN001") {
		assert.NotEqual(t, "unused binding", w.Message)
	}
}

func TestUnreachableAfterReturn(t *testing.T) {
	ctx := analyze(t, "functio f() -> Numerus {\n    redde 1\n    redde 2\n}")
	assert.Len(t, warnings(ctx, "WARN002"), 1)
}

func TestUnreachableAfterBreakInLoop(t *testing.T) {
	src := `functio f() {
    dum verum {
        discede
        redde
    }
}`
	ctx := analyze(t, src)
	assert.Len(t, warnings(ctx, "WARN002"), 1)
}

func TestVacuousCast(t *testing.T) {
	src := `functio f(x: Numerus) -> Numerus {
    redde x tamquam Numerus
}`
	ctx := analyze(t, src)
	assert.Len(t, warnings(ctx, "WARN003"), 1)
}

func TestEffectiveCastNotReported(t *testing.T) {
	src := `functio f(x: Numerus) -> Fractus {
    redde x tamquam Fractus
}`
	ctx := analyze(t, src)
	assert.Empty(t, warnings(ctx, "WARN003"))
}

func TestShadowingParam(t *testing.T) {
	src := `functio f(x: Numerus) -> Numerus {
    fixum x = 2
    redde x
}`
	ctx := analyze(t, src)
	assert.Len(t, warnings(ctx, "WARN005"), 1)
}

func TestCalledFunctionNotReportedUnused(t *testing.T) {
	src := `functio g() -> Numerus { redde 1 }

functio f() -> Numerus {
    redde g()
}`
	ctx := analyze(t, src)
	for _, w := range warnings(ctx, "WARN001") {
		assert.NotEqual(t, ctx.HIR.Items[0].Span, w.Span, "g is called, so its item must not be reported")
	}
}

func TestUnusedImport(t *testing.T) {
	src := `importa "geometria" pro punctum

functio f() -> Numerus { redde 1 }`
	ctx := analyze(t, src)
	found := false
	for _, w := range warnings(ctx, "WARN001") {
		if w.Message == "unused import" {
			found = true
		}
	}
	assert.True(t, found)
}
