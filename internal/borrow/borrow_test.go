package borrow_test

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
		pipeline.BorrowProcessor{},
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

func TestUseAfterMoveThroughCall(t *testing.T) {
	src := `functio take(xs: Numerus[]) { redde }

functio f() {
    fixum a = [1, 2]
    take(a)
    take(a)
}`
	ctx := analyze(t, src)
	found := codesOf(ctx, "SEM050")
	require.Len(t, found, 1, "expected exactly one use-after-move diagnostic")
	// the diagnostic lands on the second use
	assert.Greater(t, found[0].Span.Start, 0)
}

func TestUseAfterMoveThroughRebinding(t *testing.T) {
	src := `functio f() {
    fixum a = [1]
    fixum b = a
    fixum c = a
}`
	ctx := analyze(t, src)
	assert.Len(t, codesOf(ctx, "SEM050"), 1)
}

func TestSharedBorrowDoesNotMove(t *testing.T) {
	src := `functio inspice(xs: de Numerus[]) { redde }

functio f() {
    fixum a = [1, 2]
    inspice(a)
    inspice(a)
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM050"))
	assert.Empty(t, codesOf(ctx, "SEM051"))
}

func TestMutableBorrowConflict(t *testing.T) {
	src := `functio geminus(a: in Numerus[], b: in Numerus[]) { redde }

functio f() {
    varia xs = [1]
    geminus(xs, xs)
}`
	ctx := analyze(t, src)
	assert.NotEmpty(t, codesOf(ctx, "SEM052"))
}

func TestBorrowOfMoved(t *testing.T) {
	src := `functio take(xs: Numerus[]) { redde }
functio inspice(xs: de Numerus[]) { redde }

functio f() {
    fixum a = [1]
    take(a)
    inspice(a)
}`
	ctx := analyze(t, src)
	assert.Len(t, codesOf(ctx, "SEM051"), 1)
}

func TestBorrowReleasedAtScopeExit(t *testing.T) {
	src := `functio inspice(xs: de Numerus[]) { redde }

functio f() {
    varia a = [1]
    si verum {
        inspice(a)
    }
    a = [2]
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM052"))
}

func TestPlainReadsDoNotConflict(t *testing.T) {
	src := `functio f() {
    fixum a = 1
    fixum b = a + a
}`
	ctx := analyze(t, src)
	assert.Empty(t, codesOf(ctx, "SEM050"))
}