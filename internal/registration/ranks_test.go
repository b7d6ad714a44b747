package registration

import "testing"

func TestRankName(t *testing.T) {
	cases := []struct {
		code int
		name string
	}{
		{0, "Non-player"},
		{5, "5 dan"},
		{-12, "12 kyu"},
		{109, "9 dan pro"},
	}
	for _, tc := range cases {
		name, ok := RankName(tc.code)
		if !ok || name != tc.name {
			t.Errorf("RankName(%d) = %q/%v, want %q", tc.code, name, ok, tc.name)
		}
	}

	if _, ok := RankName(42); ok {
		t.Error("expected 42 to be unknown")
	}
	if ValidRank(-31) {
		t.Error("expected -31 to be invalid")
	}
}

func TestRankCodesOrdered(t *testing.T) {
	codes := RankCodes()
	if len(codes) != 1+9+9+30 {
		t.Fatalf("unexpected rank count %d", len(codes))
	}
	if codes[0] != 109 {
		t.Errorf("expected strongest rank first, got %d", codes[0])
	}
	for i := 1; i < len(codes); i++ {
		if codes[i] >= codes[i-1] {
			t.Fatalf("codes not strictly descending at %d", i)
		}
	}
}
