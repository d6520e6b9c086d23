package exhaustive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
		pipeline.ExhaustiveProcessor{},
	).Run(ctx)
}

func codesOf(ctx *pipeline.Context, code string) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	for _, d := range ctx.Diags.All() {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

const colorEnum = "discretio Color { Red Green Blue }\n\n"

func TestNonExhaustiveMatch(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu Color.Green { redde }
    }
}`
	ctx := analyze(t, src)
	found := codesOf(ctx, "SEM040")
	require.Len(t, found, 1, "expected exactly one non-exhaustive diagnostic")
	// the diagnostic anchors on the scrutinee's span
	assert.Equal(t, "c", ctx.File.Slice(found[0].Span))
}

func TestExhaustiveMatchAccepted(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu Color.Green { redde }
        casu Color.Blue { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM040"))
}

func TestCatchAllCoversRemaining(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu _ { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM040"))
}

func TestEligeDefaultCoversRemaining(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        elige { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM040"))
}

func TestArmAfterCatchAllUnreachable(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu _ { redde }
        casu Color.Red { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Len(t, codesOf(ctx, "SEM041"), 1)
}

func TestDuplicateVariantArm(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Color.Red { redde }
        casu Color.Red { redde }
        casu Color.Green { redde }
        casu Color.Blue { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Len(t, codesOf(ctx, "SEM042"), 1)
}

func TestGuardedArmDoesNotCover(t *testing.T) {
	src := colorEnum + `functio f(c: Color, b: Bivalens) {
    discerne c {
        casu Color.Red si b { redde }
        casu Color.Green { redde }
        casu Color.Blue { redde }
    }
}`
	ctx := analyze(t, src)
	// Red is only matched under a guard, so the match is not exhaustive
	assert.Len(t, codesOf(ctx, "SEM040"), 1)
}

func TestBareVariantPatternsResolve(t *testing.T) {
	src := colorEnum + `functio f(c: Color) {
    discerne c {
        casu Red { redde }
        casu Green { redde }
        casu Blue { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM001"))
	assert.Empty(t, codesOf(ctx, "SEM040"))
}

func TestNonEnumScrutineeIgnored(t *testing.T) {
	src := `functio f(x: Numerus) {
    discerne x {
        casu 1 { redde }
        casu _ { redde }
    }
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM040"))
}