package specparse

import "testing"

func TestDefaultChannelRegistry(t *testing.T) {
	reg := DefaultChannelRegistry()

	if len(reg.Kinds) == 0 {
		t.Fatal("embedded registry has no kinds")
	}
	if len(reg.Modifiers) == 0 {
		t.Fatal("embedded registry has no modifiers")
	}

	contains := func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	}

	for _, kind := range []string{"voltage", "accel", "temp", "timestamp"} {
		if !contains(reg.Kinds, kind) {
			t.Errorf("embedded registry missing kind %q", kind)
		}
	}
	for _, mod := range []string{"x", "y", "z", "ir"} {
		if !contains(reg.Modifiers, mod) {
			t.Errorf("embedded registry missing modifier %q", mod)
		}
	}

	if DefaultChannelRegistry() != reg {
		t.Error("default registry must be a singleton")
	}
}

func TestParseChannelRegistry(t *testing.T) {
	data := []byte("kinds:\n  - flux\nmodifiers:\n  - w\n")

	reg, err := ParseChannelRegistry(data)
	if err != nil {
		t.Fatalf("ParseChannelRegistry: %v", err)
	}
	if len(reg.Kinds) != 1 || reg.Kinds[0] != "flux" {
		t.Errorf("unexpected kinds: %v", reg.Kinds)
	}
	if len(reg.Modifiers) != 1 || reg.Modifiers[0] != "w" {
		t.Errorf("unexpected modifiers: %v", reg.Modifiers)
	}
}

func TestParseChannelRegistryInvalid(t *testing.T) {
	if _, err := ParseChannelRegistry([]byte("kinds: {not: [a, list")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
