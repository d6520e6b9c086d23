// Package session models the process-local compile session described in
// spec.md §5: a single compile call's exclusively-owned interner, type
// table, and resolver, none of it observed from outside until the phase
// boundary. A Session is never reset: reusing one for several compiles
// carries its interner and type table over, while separate Sessions
// share nothing.
package session

import (
	"github.com/google/uuid"

	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// Session owns the shared mutable state for one compile call.
type Session struct {
	ID      uuid.UUID
	Interner *intern.Interner
	Types    *types.Table
	Sources  *source.Map
}

// New starts a fresh compile session with its own interner and type table.
func New() *Session {
	return &Session{
		ID:       uuid.New(),
		Interner: intern.New(),
		Types:    types.NewTable(),
		Sources:  source.NewMap(),
	}
}
