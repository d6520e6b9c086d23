package pipeline_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/config"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/pipeline"
	"github.com/radixlang/radix/internal/session"
)

func newContext(src string) *pipeline.Context {
	sess := session.New()
	return &pipeline.Context{
		Session: sess,
		File:    sess.Sources.AddFile("test.rdx", src),
		Diags:   &diagnostics.Bag{},
	}
}

func fullPipeline(target string) *pipeline.Pipeline {
	return pipeline.New(
		pipeline.LexProcessor{},
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.LowerProcessor{},
		pipeline.CheckProcessor{},
		pipeline.BorrowProcessor{},
		pipeline.ExhaustiveProcessor{},
		pipeline.LintProcessor{},
		pipeline.EmitProcessor{Target: target},
	)
}

const program = `discretio Color { Red Green Blue }

functio nomen(c: Color) -> Textus {
    discerne c {
        casu Color.Red { redde "ruber" }
        casu Color.Green { redde "viridis" }
        casu Color.Blue { redde "caeruleus" }
    }
    redde ""
}`

func TestFullPipelineProducesOutput(t *testing.T) {
	ctx := fullPipeline(config.TargetCanonical).Run(newContext(program))
	require.False(t, ctx.Diags.HasErrors(), "unexpected errors: %v", ctx.Diags.All())
	require.NotNil(t, ctx.HIR)
	assert.NotEmpty(t, ctx.Output)
	assert.Contains(t, ctx.Output, "discretio Color")
}

func TestEmitSkippedOnErrors(t *testing.T) {
	ctx := fullPipeline(config.TargetCanonical).Run(newContext("functio f() {\n    redde ignotum\n}"))
	assert.True(t, ctx.Diags.HasErrors())
	assert.Empty(t, ctx.Output)
	assert.True(t, ctx.Stopped)
}

func TestPhasesRunInOrder(t *testing.T) {
	ctx := newContext(program)
	pipeline.New(pipeline.LexProcessor{}, pipeline.ParseProcessor{}).Run(ctx)
	require.NotNil(t, ctx.AST)
	assert.Greater(t, len(ctx.Tokens), 0)
	assert.Nil(t, ctx.HIR)
}

// TestDefIdUniqueness is the §8 property: no two distinct named
// entities share a DefId, and every HIR path reference resolves to a
// DefId that exists as a definition somewhere in the module.
func TestDefIdUniqueness(t *testing.T) {
	ctx := fullPipeline(config.TargetCanonical).Run(newContext(program))
	require.False(t, ctx.Diags.HasErrors())

	defs := map[hir.DefId]int{}
	var visitBlock func(b *hir.Block)
	recordDef := func(id hir.DefId) {
		if id != 0 {
			defs[id]++
		}
	}
	var visitPattern func(p *hir.Pattern)
	visitPattern = func(p *hir.Pattern) {
		if p == nil {
			return
		}
		if p.Kind == hir.PatternBind {
			recordDef(p.BindDef)
		}
		for _, sub := range p.Elements {
			visitPattern(sub)
		}
	}
	visitBlock = func(b *hir.Block) {
		if b == nil {
			return
		}
		for _, s := range b.Stmts {
			if s.Kind == hir.StmtLet {
				visitPattern(s.Bind)
			}
			if s.Kind == hir.StmtMatch {
				for _, arm := range s.Arms {
					for _, p := range arm.Patterns {
						visitPattern(p)
					}
					visitBlock(arm.Body)
				}
			}
		}
	}
	for _, item := range ctx.HIR.Items {
		recordDef(item.DefID)
		if item.Kind == hir.ItemFunction {
			for _, p := range item.Func.Params {
				recordDef(p.DefID)
			}
			visitBlock(item.Func.Body)
		}
		if item.Kind == hir.ItemEnum {
			for _, v := range item.Enum.Variants {
				recordDef(v.DefID)
			}
		}
	}
	for id, n := range defs {
		assert.Equal(t, 1, n, "DefId %d defined %d times", id, n)
	}
}

// TestSessionIsolation asserts compiles on separate sessions do not
// share interner or type-table state (spec.md §5).
func TestSessionIsolation(t *testing.T) {
	a := fullPipeline(config.TargetCanonical).Run(newContext(program))
	b := fullPipeline(config.TargetCanonical).Run(newContext(program))
	require.False(t, a.Diags.HasErrors())
	require.False(t, b.Diags.HasErrors())
	assert.NotEqual(t, a.Session.ID, b.Session.ID)
	// identical inputs through independent sessions give identical output
	if diff := deep.Equal(a.Output, b.Output); diff != nil {
		t.Errorf("outputs differ across sessions: %v", diff)
	}
}