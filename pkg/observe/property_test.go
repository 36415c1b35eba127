package observe

import "testing"

func TestRegisterPropertyAssignsDistinctKeys(t *testing.T) {
	a := RegisterProperty("proptest.Widget.alpha")
	b := RegisterProperty("proptest.Widget.beta")

	if a == PropertyAll || b == PropertyAll {
		t.Error("registered keys must not equal PropertyAll")
	}
	if a == b {
		t.Errorf("distinct names got the same key %d", a)
	}
}

func TestRegisterPropertyIdempotent(t *testing.T) {
	first := RegisterProperty("proptest.Widget.gamma")
	count := PropertyCount()
	second := RegisterProperty("proptest.Widget.gamma")

	if first != second {
		t.Errorf("re-registration returned %d, want %d", second, first)
	}
	if got := PropertyCount(); got != count {
		t.Errorf("re-registration grew the table: count %d, want %d", got, count)
	}
}

func TestRegisterPropertyGrowsCount(t *testing.T) {
	before := PropertyCount()
	RegisterProperty("proptest.Widget.delta")
	after := PropertyCount()

	if after != before+1 {
		t.Errorf("count went %d -> %d, want +1", before, after)
	}
}

func TestPropertyByName(t *testing.T) {
	p := RegisterProperty("proptest.Widget.epsilon")

	got, ok := PropertyByName("proptest.Widget.epsilon")
	if !ok {
		t.Fatal("registered name not found")
	}
	if got != p {
		t.Errorf("PropertyByName = %d, want %d", got, p)
	}

	if _, ok := PropertyByName("proptest.Widget.never-registered"); ok {
		t.Error("unregistered name should not be found")
	}

	all, ok := PropertyByName("*")
	if !ok || all != PropertyAll {
		t.Errorf("PropertyByName(\"*\") = %d, %v, want PropertyAll, true", all, ok)
	}
}

func TestPropertyName(t *testing.T) {
	p := RegisterProperty("proptest.Widget.zeta")

	if got := p.Name(); got != "proptest.Widget.zeta" {
		t.Errorf("Name() = %q, want %q", got, "proptest.Widget.zeta")
	}
	if got := PropertyAll.Name(); got != "*" {
		t.Errorf("PropertyAll.Name() = %q, want %q", got, "*")
	}
	if got := Property(-7).Name(); got != "Property(-7)" {
		t.Errorf("unregistered key Name() = %q, want %q", got, "Property(-7)")
	}
}

func TestPropertyString(t *testing.T) {
	p := RegisterProperty("proptest.Widget.eta")
	if p.String() != p.Name() {
		t.Errorf("String() = %q, want Name() %q", p.String(), p.Name())
	}
}

func TestPropertyValid(t *testing.T) {
	p := RegisterProperty("proptest.Widget.theta")

	if !p.Valid() {
		t.Error("registered key should be valid")
	}
	if !PropertyAll.Valid() {
		t.Error("PropertyAll should be valid")
	}
	if Property(-1).Valid() {
		t.Error("negative key should be invalid")
	}
	if Property(1 << 20).Valid() {
		t.Error("out-of-range key should be invalid")
	}
}

func TestRegisterPropertyReservedNames(t *testing.T) {
	for _, name := range []string{"", "*"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RegisterProperty(%q) should panic", name)
				}
			}()
			RegisterProperty(name)
		}()
	}
}

func TestPropertyNamesContainRegistrations(t *testing.T) {
	RegisterProperty("proptest.Widget.iota")

	found := false
	for _, name := range PropertyNames() {
		if name == "proptest.Widget.iota" {
			found = true
		}
		if name == "*" {
			t.Error("PropertyNames should not include the sentinel")
		}
	}
	if !found {
		t.Error("PropertyNames missing a registered name")
	}

	sorted := SortedPropertyNames()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("SortedPropertyNames out of order at %d: %q > %q", i, sorted[i-1], sorted[i])
		}
	}
}
