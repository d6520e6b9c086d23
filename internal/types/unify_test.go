package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/types"
)

func table() (*types.Table, *types.Substitution) {
	return types.NewTable(), types.NewSubstitution()
}

func TestPrimitivesAreCached(t *testing.T) {
	tbl, _ := table()
	a := tbl.Primitive(types.PrimNumerus)
	b := tbl.Primitive(types.PrimNumerus)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, tbl.Primitive(types.PrimTextus))
}

func TestUnifyIdenticalPrimitives(t *testing.T) {
	tbl, sub := table()
	assert.NoError(t, types.Unify(tbl, sub, tbl.Primitive(types.PrimTextus), tbl.Primitive(types.PrimTextus)))
}

func TestUnifyMismatchedPrimitives(t *testing.T) {
	tbl, sub := table()
	assert.Error(t, types.Unify(tbl, sub, tbl.Primitive(types.PrimTextus), tbl.Primitive(types.PrimBivalens)))
}

func TestNumericWideningBothDirections(t *testing.T) {
	tbl, sub := table()
	n, f := tbl.Primitive(types.PrimNumerus), tbl.Primitive(types.PrimFractus)
	assert.NoError(t, types.Unify(tbl, sub, n, f))
	assert.NoError(t, types.Unify(tbl, sub, f, n))
}

func TestInferVariableBinds(t *testing.T) {
	tbl, sub := table()
	v := tbl.Fresh()
	n := tbl.Primitive(types.PrimNumerus)
	require.NoError(t, types.Unify(tbl, sub, v, n))
	assert.Equal(t, n, sub.Resolve(tbl, v))
}

func TestBoundVariableUnifiesTransitively(t *testing.T) {
	tbl, sub := table()
	v := tbl.Fresh()
	n := tbl.Primitive(types.PrimNumerus)
	require.NoError(t, types.Unify(tbl, sub, v, n))
	// v is now Numerus; unifying v with Textus must fail
	assert.Error(t, types.Unify(tbl, sub, v, tbl.Primitive(types.PrimTextus)))
}

func TestOccursCheck(t *testing.T) {
	tbl, sub := table()
	v := tbl.Fresh()
	arr := tbl.Array(v)
	assert.Error(t, types.Unify(tbl, sub, v, arr))
}

func TestStructuralUnification(t *testing.T) {
	tbl, sub := table()
	v := tbl.Fresh()
	got := tbl.Array(v)
	want := tbl.Array(tbl.Primitive(types.PrimTextus))
	require.NoError(t, types.Unify(tbl, sub, got, want))
	assert.Equal(t, tbl.Primitive(types.PrimTextus), sub.Resolve(tbl, v))
}

func TestRefMutabilityMustMatch(t *testing.T) {
	tbl, sub := table()
	n := tbl.Primitive(types.PrimNumerus)
	shared := tbl.Ref(types.Shared, n)
	mutable := tbl.Ref(types.Mutable, n)
	assert.Error(t, types.Unify(tbl, sub, shared, mutable))
}

func TestFuncSignatureArity(t *testing.T) {
	tbl, sub := table()
	n := tbl.Primitive(types.PrimNumerus)
	one := tbl.Func(types.FuncSig{Params: []types.TypeId{n}, Return: n})
	two := tbl.Func(types.FuncSig{Params: []types.TypeId{n, n}, Return: n})
	assert.Error(t, types.Unify(tbl, sub, one, two))
}

func TestAliasUnifiesThroughUnderlying(t *testing.T) {
	tbl, sub := table()
	n := tbl.Primitive(types.PrimNumerus)
	alias := tbl.Alias(types.DefRef{ID: 7, Name: "Aetas"}, n)
	assert.NoError(t, types.Unify(tbl, sub, alias, n))
}

func TestErrorUnifiesWithAnything(t *testing.T) {
	tbl, sub := table()
	assert.NoError(t, types.Unify(tbl, sub, tbl.Error(), tbl.Primitive(types.PrimTextus)))
}

func TestAssignability(t *testing.T) {
	tbl, sub := table()
	n := tbl.Primitive(types.PrimNumerus)
	f := tbl.Primitive(types.PrimFractus)
	optN := tbl.Option(n)

	assert.True(t, types.Assignable(tbl, sub, n, f), "Numerus into Fractus")
	assert.True(t, types.Assignable(tbl, sub, n, optN), "T into Option<T>")
	assert.True(t, types.Assignable(tbl, sub, tbl.Option(tbl.Fresh()), optN), "nil literal into Option<T>")
	assert.False(t, types.Assignable(tbl, sub, tbl.Primitive(types.PrimTextus), optN))
}

func TestFinalizeSubstitutesNestedVars(t *testing.T) {
	tbl, sub := table()
	v := tbl.Fresh()
	require.NoError(t, types.Unify(tbl, sub, v, tbl.Primitive(types.PrimTextus)))
	arr := tbl.Array(v)
	assert.Equal(t, "lista<Textus>", tbl.String(types.Finalize(tbl, sub, arr)))
	assert.True(t, types.IsFinal(tbl, sub, arr))
	assert.False(t, types.IsFinal(tbl, sub, tbl.Array(tbl.Fresh())))
}
