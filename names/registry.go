// Package names interns element and attribute local names to small
// dense integer identifiers, the string-interning dispatch pattern
// spec.md's Design Notes call out as worth preserving from the
// original implementation. It is a standalone component: builder's
// mode handlers dispatch on Go string switches over token.Token.Name
// directly rather than through a names.ID, so nothing in this module
// calls Intern/Lookup today. It is kept for callers that want compact
// name identifiers of their own (e.g. an indexer storing many parsed
// documents), not as a layer the tree builder runs through.
//
// A registry has two layers: a shared immutable basis, built once at
// package init from a fixed set of well-known HTML names, and a
// per-session extension for names that only ever appear in input. The
// basis is safe to share across goroutines and sessions; the
// extension belongs to exactly one parse session.
package names

import "sync"

// ID is a dense, append-only name identifier. Within one Registry, two
// IDs are equal iff they were interned from the same string; extension
// IDs from different registries can coincide for different strings.
type ID int32

// Invalid is returned by lookups that find nothing.
const Invalid ID = -1

type basisTable struct {
	byName map[string]ID
	byID   []string
}

var basis = newBasisTable()

func newBasisTable() *basisTable {
	return &basisTable{byName: make(map[string]ID, 512)}
}

// register adds s to the basis if it is not already present and
// returns its ID. Only called while building the package-level basis;
// never called by a running parse session.
func register(s string) ID {
	if id, ok := basis.byName[s]; ok {
		return id
	}
	id := ID(len(basis.byID))
	basis.byID = append(basis.byID, s)
	basis.byName[s] = id
	return id
}

// Registry is the per-session name table: the read-only basis plus a
// mutable extension for names first seen in this session's input.
type Registry struct {
	mu        sync.Mutex
	extByName map[string]ID
	extByID   []string
}

// NewRegistry returns a session-local registry backed by the shared
// basis.
func NewRegistry() *Registry {
	return &Registry{extByName: make(map[string]ID)}
}

// Intern returns the ID for s, allocating a new extension entry if s
// is not in the basis and has not been seen yet this session.
func (r *Registry) Intern(s string) ID {
	if id, ok := basis.byName[s]; ok {
		return id
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.extByName[s]; ok {
		return id
	}
	id := ID(len(basis.byID) + len(r.extByID))
	r.extByID = append(r.extByID, s)
	r.extByName[s] = id
	return id
}

// NameOf returns the string a previously interned ID was built from.
func (r *Registry) NameOf(id ID) string {
	if id < 0 {
		return ""
	}
	if int(id) < len(basis.byID) {
		return basis.byID[id]
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ext := int(id) - len(basis.byID)
	if ext < 0 || ext >= len(r.extByID) {
		return ""
	}
	return r.extByID[ext]
}

// Lookup returns the basis ID for s and whether s is a basis name.
// Useful to callers that want to test basis membership without
// allocating a session Registry, since basis membership never changes
// at runtime.
func Lookup(s string) (ID, bool) {
	id, ok := basis.byName[s]
	return id, ok
}
