package diagnostics_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/source"
)

func TestBagCollectsInOrder(t *testing.T) {
	bag := &diagnostics.Bag{}
	bag.Add(diagnostics.New(diagnostics.Error, "SEM001", source.Span{}, "primus"))
	bag.Add(diagnostics.New(diagnostics.Warning, "WARN001", source.Span{}, "secundus"))
	bag.Add(nil) // ignored

	all := bag.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "primus", all[0].Message)
	assert.True(t, bag.HasErrors())
}

func TestBagStampsSessionID(t *testing.T) {
	id := uuid.New()
	bag := &diagnostics.Bag{SessionID: id}
	bag.Add(diagnostics.New(diagnostics.Error, "SEM001", source.Span{}, "primus"))
	assert.Equal(t, id, bag.All()[0].SessionID)
}

func TestBagWithoutErrors(t *testing.T) {
	bag := &diagnostics.Bag{}
	bag.Add(diagnostics.New(diagnostics.Warning, "WARN002", source.Span{}, "unreachable"))
	assert.False(t, bag.HasErrors())
}

func TestNewfFormatsMessage(t *testing.T) {
	d := diagnostics.Newf(diagnostics.Error, "SEM013", source.Span{Start: 3, End: 7}, "expected %d arguments, got %d", 2, 3)
	assert.Equal(t, "expected 2 arguments, got 3", d.Message)
	assert.Equal(t, 3, d.Span.Start)
}

func TestWithHelpChains(t *testing.T) {
	d := diagnostics.New(diagnostics.Error, "SEM040", source.Span{}, "non-exhaustive").
		WithHelp(diagnostics.Help("SEM040"))
	assert.NotEmpty(t, d.Help)
}

func TestCatalogCoversStableCodes(t *testing.T) {
	for _, code := range []string{"LEX001", "PARSE001", "SEM001", "SEM010", "SEM040", "SEM050", "WARN001", "WARN002", "WARN003", "CODEGEN001"} {
		assert.NotEmpty(t, diagnostics.Help(code), "no catalog entry for %s", code)
	}
}

func TestSummaryCounts(t *testing.T) {
	bag := &diagnostics.Bag{}
	bag.Add(diagnostics.New(diagnostics.Error, "SEM001", source.Span{}, "x"))
	bag.Add(diagnostics.New(diagnostics.Error, "SEM010", source.Span{}, "y"))
	bag.Add(diagnostics.New(diagnostics.Warning, "WARN001", source.Span{}, "z"))
	assert.Equal(t, "2 error(s), 1 warning(s)", bag.Summary())
}
