package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radixlang/radix/internal/intern"
)

func TestInternDeduplicates(t *testing.T) {
	in := intern.New()
	a := in.Intern("nomen")
	b := in.Intern("nomen")
	c := in.Intern("aliud")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestLookupRoundTrip(t *testing.T) {
	in := intern.New()
	sym := in.Intern("radix")
	assert.Equal(t, "radix", in.Lookup(sym))
}

func TestLookupUnknownSymbol(t *testing.T) {
	in := intern.New()
	assert.Equal(t, "", in.Lookup(intern.Symbol(999)))
}
