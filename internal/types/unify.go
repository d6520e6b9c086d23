package types

import "fmt"

// Substitution is a union-find-style binding table from InferVar to
// TypeId, per spec.md §3 ("resolved during unification via a union-find
// -style substitution table"), grounded on the occurs-check/bind-then-
// chase shape of funvibe-funxy/internal/typesystem/unify.go.
type Substitution struct {
	bindings map[InferVar]TypeId
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[InferVar]TypeId)}
}

// Resolve follows the substitution chain for id until it reaches a
// non-Infer type or an unbound variable.
func (s *Substitution) Resolve(t *Table, id TypeId) TypeId {
	for {
		ty := t.Get(id)
		if ty.Kind != KInfer {
			return id
		}
		next, ok := s.bindings[ty.Var]
		if !ok {
			return id
		}
		id = next
	}
}

func (s *Substitution) bind(v InferVar, id TypeId) {
	s.bindings[v] = id
}

func (s *Substitution) occurs(t *Table, v InferVar, id TypeId) bool {
	id = s.Resolve(t, id)
	ty := t.Get(id)
	switch ty.Kind {
	case KInfer:
		return ty.Var == v
	case KArray, KSet, KOption:
		return s.occurs(t, v, ty.Elem)
	case KRef:
		return s.occurs(t, v, ty.Elem)
	case KMap:
		return s.occurs(t, v, ty.Key) || s.occurs(t, v, ty.Value)
	case KFunc:
		for _, p := range ty.Sig.Params {
			if s.occurs(t, v, p) {
				return true
			}
		}
		return s.occurs(t, v, ty.Sig.Return)
	case KApplied:
		if s.occurs(t, v, ty.Ctor) {
			return true
		}
		for _, a := range ty.Args {
			if s.occurs(t, v, a) {
				return true
			}
		}
		return false
	case KUnion:
		for _, m := range ty.Members {
			if s.occurs(t, v, m) {
				return true
			}
		}
		return false
	case KAlias:
		return s.occurs(t, v, ty.Underlying)
	default:
		return false
	}
}

// isNumericWidening reports whether a widens to b under spec.md §4.5's
// "implicit widening rule": Numerus widens to Fractus both directions in
// arithmetic/unification context (scenario 3 in spec.md §8).
func isNumericWidening(t *Table, a, b Type) bool {
	widen := func(x, y Type) bool {
		return x.Kind == KPrimitive && x.PrimName == PrimNumerus &&
			y.Kind == KPrimitive && y.PrimName == PrimFractus
	}
	return widen(a, b) || widen(b, a)
}

// Unify attempts to make a and b equal, recording bindings in s. It
// returns an error describing the mismatch on failure.
func Unify(t *Table, s *Substitution, a, b TypeId) error {
	a = s.Resolve(t, a)
	b = s.Resolve(t, b)
	if a == b {
		return nil
	}
	ta, tb := t.Get(a), t.Get(b)

	if ta.Kind == KError || tb.Kind == KError {
		return nil
	}

	if ta.Kind == KInfer {
		if s.occurs(t, ta.Var, b) {
			return fmt.Errorf("occurs check failed: %s occurs in %s", t.String(a), t.String(b))
		}
		s.bind(ta.Var, b)
		return nil
	}
	if tb.Kind == KInfer {
		if s.occurs(t, tb.Var, a) {
			return fmt.Errorf("occurs check failed: %s occurs in %s", t.String(b), t.String(a))
		}
		s.bind(tb.Var, a)
		return nil
	}

	if ta.Kind == KAlias {
		return Unify(t, s, ta.Underlying, b)
	}
	if tb.Kind == KAlias {
		return Unify(t, s, a, tb.Underlying)
	}

	if ta.Kind != tb.Kind {
		if isNumericWidening(t, ta, tb) {
			return nil
		}
		return fmt.Errorf("type mismatch: %s vs %s", t.String(a), t.String(b))
	}

	switch ta.Kind {
	case KPrimitive:
		if ta.PrimName != tb.PrimName {
			if isNumericWidening(t, ta, tb) {
				return nil
			}
			return fmt.Errorf("type mismatch: %s vs %s", ta.PrimName, tb.PrimName)
		}
		return nil
	case KArray, KSet, KOption:
		return Unify(t, s, ta.Elem, tb.Elem)
	case KRef:
		if ta.Mut != tb.Mut {
			return fmt.Errorf("reference mutability mismatch: %s vs %s", t.String(a), t.String(b))
		}
		return Unify(t, s, ta.Elem, tb.Elem)
	case KMap:
		if err := Unify(t, s, ta.Key, tb.Key); err != nil {
			return err
		}
		return Unify(t, s, ta.Value, tb.Value)
	case KStruct, KEnum, KInterface:
		if ta.Def.ID != tb.Def.ID {
			return fmt.Errorf("type mismatch: %s vs %s", ta.Def.Name, tb.Def.Name)
		}
		return nil
	case KFunc:
		if len(ta.Sig.Params) != len(tb.Sig.Params) {
			return fmt.Errorf("function arity mismatch: %d vs %d", len(ta.Sig.Params), len(tb.Sig.Params))
		}
		for i := range ta.Sig.Params {
			if err := Unify(t, s, ta.Sig.Params[i], tb.Sig.Params[i]); err != nil {
				return err
			}
		}
		return Unify(t, s, ta.Sig.Return, tb.Sig.Return)
	case KParam:
		if ta.ParamName != tb.ParamName {
			return fmt.Errorf("type parameter mismatch: %s vs %s", ta.ParamName, tb.ParamName)
		}
		return nil
	case KApplied:
		if err := Unify(t, s, ta.Ctor, tb.Ctor); err != nil {
			return err
		}
		if len(ta.Args) != len(tb.Args) {
			return fmt.Errorf("type argument count mismatch")
		}
		for i := range ta.Args {
			if err := Unify(t, s, ta.Args[i], tb.Args[i]); err != nil {
				return err
			}
		}
		return nil
	case KUnion:
		if len(ta.Members) != len(tb.Members) {
			return fmt.Errorf("union arity mismatch")
		}
		for i := range ta.Members {
			if err := Unify(t, s, ta.Members[i], tb.Members[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// Assignable implements spec.md §4.5's assignability relation, which is
// separate from (and looser than) Unify: used at argument passing and
// constant-initializer checks.
func Assignable(t *Table, s *Substitution, from, to TypeId) bool {
	from = s.Resolve(t, from)
	to = s.Resolve(t, to)
	if from == to {
		return true
	}
	tf, tt := t.Get(from), t.Get(to)

	if tt.Kind == KOption {
		if tf.Kind == KOption {
			return Unify(t, s, from, to) == nil
		}
		if tf.Kind == KPrimitive && tf.PrimName == PrimVacuum {
			return true
		}
		return Assignable(t, s, from, tt.Elem)
	}
	if tf.Kind == KPrimitive && tf.PrimName == PrimNumerus && tt.Kind == KPrimitive && tt.PrimName == PrimFractus {
		return true
	}
	return Unify(t, s, from, to) == nil
}

// Finalize substitutes every bound Infer variable in id, recursively,
// returning the fully-resolved TypeId (spec.md §4.5 "Finalization pass").
// Structural types are rebuilt as new table entries around their
// finalized children; existing entries are left unchanged.
func Finalize(t *Table, s *Substitution, id TypeId) TypeId {
	id = s.Resolve(t, id)
	ty := t.Get(id)
	switch ty.Kind {
	case KArray:
		return t.Array(Finalize(t, s, ty.Elem))
	case KSet:
		return t.SetOf(Finalize(t, s, ty.Elem))
	case KOption:
		return t.Option(Finalize(t, s, ty.Elem))
	case KRef:
		return t.Ref(ty.Mut, Finalize(t, s, ty.Elem))
	case KMap:
		return t.MapOf(Finalize(t, s, ty.Key), Finalize(t, s, ty.Value))
	case KFunc:
		params := make([]TypeId, len(ty.Sig.Params))
		for i, p := range ty.Sig.Params {
			params[i] = Finalize(t, s, p)
		}
		return t.Func(FuncSig{Params: params, Return: Finalize(t, s, ty.Sig.Return), Variadic: ty.Sig.Variadic})
	case KApplied:
		args := make([]TypeId, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = Finalize(t, s, a)
		}
		return t.Applied(Finalize(t, s, ty.Ctor), args)
	case KUnion:
		members := make([]TypeId, len(ty.Members))
		for i, m := range ty.Members {
			members[i] = Finalize(t, s, m)
		}
		return t.Union(members)
	default:
		return id
	}
}

// IsFinal reports whether id, after resolving through s, contains no
// unresolved Infer variable anywhere in its structure (spec.md §8's
// TypeId finalization invariant).
func IsFinal(t *Table, s *Substitution, id TypeId) bool {
	id = s.Resolve(t, id)
	ty := t.Get(id)
	switch ty.Kind {
	case KInfer:
		return false
	case KArray, KSet, KOption, KRef:
		return IsFinal(t, s, ty.Elem)
	case KMap:
		return IsFinal(t, s, ty.Key) && IsFinal(t, s, ty.Value)
	case KFunc:
		for _, p := range ty.Sig.Params {
			if !IsFinal(t, s, p) {
				return false
			}
		}
		return IsFinal(t, s, ty.Sig.Return)
	case KApplied:
		if !IsFinal(t, s, ty.Ctor) {
			return false
		}
		for _, a := range ty.Args {
			if !IsFinal(t, s, a) {
				return false
			}
		}
		return true
	case KUnion:
		for _, m := range ty.Members {
			if !IsFinal(t, s, m) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
