package types

import "testing"

// TestNormalizeMethod verifies the canonicalization of loose method labels.
func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		raw  string
		want CookingMethod
	}{
		{"boiling", MethodBoiling},
		{"Boiling", MethodBoiling},
		{"  BOILING  ", MethodBoiling},
		{"Pressure Cooking", MethodPressureCooking},
		{"pressure  cooking", MethodPressureCooking},
		{"SLOW cooking", MethodSlowCooking},
		{"Steaming", MethodSteaming},
		// Unknown labels are lowercased and underscored, not erased.
		{"Sous Vide", CookingMethod("sous_vide")},
		{"", CookingMethod("")},
	}

	for _, tc := range tests {
		if got := NormalizeMethod(tc.raw); got != tc.want {
			t.Errorf("NormalizeMethod(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

// TestIsKnown verifies the closed enumeration check.
func TestIsKnown(t *testing.T) {
	for _, m := range KnownMethods {
		if !m.IsKnown() {
			t.Errorf("%s should be known", m)
		}
	}
	if CookingMethod("sous_vide").IsKnown() {
		t.Error("sous_vide should not be known")
	}
	if CookingMethod("").IsKnown() {
		t.Error("empty method should not be known")
	}
}

// TestKnownMethodsStableOrder guards the listing order the methods endpoint
// relies on.
func TestKnownMethodsStableOrder(t *testing.T) {
	want := []CookingMethod{MethodBoiling, MethodSteaming, MethodPressureCooking, MethodSlowCooking}
	if len(KnownMethods) != len(want) {
		t.Fatalf("KnownMethods has %d entries, want %d", len(KnownMethods), len(want))
	}
	for i := range want {
		if KnownMethods[i] != want[i] {
			t.Errorf("KnownMethods[%d] = %s, want %s", i, KnownMethods[i], want[i])
		}
	}
}
