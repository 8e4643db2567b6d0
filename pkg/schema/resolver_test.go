package schema

import "testing"

func TestResolveBoundRole(t *testing.T) {
	schemas := NewMap(map[Role]string{
		RoleCDM:   "cdm_test",
		RoleVocab: "vocab_test",
	})

	name, err := schemas.Resolve(RoleCDM)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if name != "cdm_test" {
		t.Errorf("resolved %q, want cdm_test", name)
	}
}

func TestResolveUnboundRoleFails(t *testing.T) {
	schemas := NewMap(map[Role]string{RoleCDM: "cdm_test"})

	if _, err := schemas.Resolve(RoleVocab); err == nil {
		t.Fatal("expected an unbound role to fail")
	}
}

func TestEmptyBindingIsUnbound(t *testing.T) {
	schemas := NewMap(map[Role]string{RoleStem: ""})

	if _, err := schemas.Resolve(RoleStem); err == nil {
		t.Fatal("expected an empty binding to count as unbound")
	}
}

func TestQualify(t *testing.T) {
	schemas := NewMap(map[Role]string{RoleVocab: "vocab_test"})

	qualified, err := schemas.Qualify(RoleVocab, "concept")
	if err != nil {
		t.Fatalf("qualify failed: %v", err)
	}
	if qualified != "vocab_test.concept" {
		t.Errorf("qualified = %q, want vocab_test.concept", qualified)
	}

	if _, err := schemas.Qualify(RoleCDM, "person"); err == nil {
		t.Fatal("expected qualify on an unbound role to fail")
	}
}
