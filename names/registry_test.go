package names

import "testing"

func TestBasisIDsAreStable(t *testing.T) {
	if Div == Invalid || P == Invalid || Table == Invalid {
		t.Fatal("expected basis names to be registered")
	}
	if Div == P {
		t.Fatal("distinct basis names must have distinct IDs")
	}
}

func TestRegistryInternReusesBasis(t *testing.T) {
	r := NewRegistry()
	if got := r.Intern("div"); got != Div {
		t.Fatalf("Intern(div) = %d, want basis ID %d", got, Div)
	}
}

func TestRegistryInternExtendsPerSession(t *testing.T) {
	r := NewRegistry()
	first := r.Intern("my-custom-element")
	second := r.Intern("my-custom-element")
	if first != second {
		t.Fatal("repeated Intern of the same string must return the same ID")
	}
	if r.NameOf(first) != "my-custom-element" {
		t.Fatalf("NameOf(%d) = %q, want my-custom-element", first, r.NameOf(first))
	}
}

func TestExtensionIDsAreRegistryLocal(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	idA := a.Intern("session-only-a")
	idB := b.Intern("session-only-b")
	// Extension IDs are only meaningful against the registry that minted
	// them; a fresh registry resolves basis IDs identically but has its
	// own independent extension numbering.
	if a.NameOf(idA) != "session-only-a" {
		t.Fatalf("a.NameOf(%d) = %q, want session-only-a", idA, a.NameOf(idA))
	}
	if b.NameOf(idB) != "session-only-b" {
		t.Fatalf("b.NameOf(%d) = %q, want session-only-b", idB, b.NameOf(idB))
	}
}
