// Package intern deduplicates identifier text into compact comparable
// handles, the way the teacher's symbol table keys everything by string
// but never has to re-hash the same identifier text twice per scope walk.
package intern

// Symbol is a compact handle into an Interner's table. The zero Symbol is
// never issued by Intern, so it doubles as an "absent" sentinel.
type Symbol int

// Interner maps identifier text to Symbol handles and back, once per
// compile session (internal/session.Session owns one instance — see §5,
// "the interner... owned exclusively by the current compile").
type Interner struct {
	index map[string]Symbol
	names []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{index: make(map[string]Symbol), names: []string{""}}
}

// Intern returns the Symbol for s, allocating a new one on first sight.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.index[s]; ok {
		return sym
	}
	sym := Symbol(len(in.names))
	in.names = append(in.names, s)
	in.index[s] = sym
	return sym
}

// Lookup returns the canonical text for a Symbol, or "" if unknown.
func (in *Interner) Lookup(sym Symbol) string {
	if int(sym) <= 0 || int(sym) >= len(in.names) {
		return ""
	}
	return in.names[sym]
}
