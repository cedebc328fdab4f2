package profile

import "testing"

func TestParseTurnover_Exact(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"85000", 85_000},
		{"£85,000", 85_000},
		{" 85 000 ", 85_000},
		{"90k", 90_000},
		{"90K", 90_000},
		{"90k+", 90_000},
		{"100k+", 100_000},
		{"1.5k", 1_500},
		{"0", 0},
	}

	for _, tt := range tests {
		got := ParseTurnover(tt.raw)
		if got.Kind != TurnoverExact {
			t.Errorf("ParseTurnover(%q).Kind = %v, want exact", tt.raw, got.Kind)
			continue
		}
		if got.Amount() != tt.want {
			t.Errorf("ParseTurnover(%q) = %v, want %v", tt.raw, got.Amount(), tt.want)
		}
	}
}

func TestParseTurnover_Range(t *testing.T) {
	tests := []struct {
		raw     string
		lo, hi  float64
		mid     float64
	}{
		{"50000-85000", 50_000, 85_000, 67_500},
		{"60k-85k", 60_000, 85_000, 72_500},
		{"£20,000-£40,000", 20_000, 40_000, 30_000},
	}

	for _, tt := range tests {
		got := ParseTurnover(tt.raw)
		if got.Kind != TurnoverRange {
			t.Fatalf("ParseTurnover(%q).Kind = %v, want range", tt.raw, got.Kind)
		}
		if got.Low != tt.lo || got.High != tt.hi {
			t.Errorf("ParseTurnover(%q) = [%v, %v], want [%v, %v]", tt.raw, got.Low, got.High, tt.lo, tt.hi)
		}
		if got.Amount() != tt.mid {
			t.Errorf("ParseTurnover(%q).Amount() = %v, want midpoint %v", tt.raw, got.Amount(), tt.mid)
		}
	}
}

func TestParseTurnover_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "not sure", "lots", "k", "-500", "a-b", "£"} {
		got := ParseTurnover(raw)
		if got.Known() {
			t.Errorf("ParseTurnover(%q) = %+v, want unknown", raw, got)
		}
		if got.Amount() != 0 {
			t.Errorf("ParseTurnover(%q).Amount() = %v, want 0", raw, got.Amount())
		}
	}
}

func TestBucketAmount(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"60k-85k", 72_500},
		{"under_20k", 10_000},
		{"over_300k", 350_000},
		{"UNDER_20K", 10_000},
		// Non-bucket input falls back to the parser.
		{"72500", 72_500},
	}
	for _, tt := range tests {
		got, ok := BucketAmount(tt.label)
		if !ok {
			t.Fatalf("BucketAmount(%q) not resolved", tt.label)
		}
		if got != tt.want {
			t.Errorf("BucketAmount(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}

	if _, ok := BucketAmount("no idea"); ok {
		t.Error("BucketAmount(\"no idea\") resolved, want miss")
	}
}

func TestParseBusinessStructure(t *testing.T) {
	tests := []struct {
		raw  string
		want BusinessStructure
	}{
		{"Sole Trader", SoleTrader},
		{"sole_trader", SoleTrader},
		{"Limited Company", LimitedCompany},
		{"ltd", LimitedCompany},
		{"Partnership", Partnership},
		{"", StructureUnknown},
		{"co-op", StructureUnknown},
	}
	for _, tt := range tests {
		if got := ParseBusinessStructure(tt.raw); got != tt.want {
			t.Errorf("ParseBusinessStructure(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestZeroProfileStructureIsUnknown(t *testing.T) {
	// A never-saved or failed-to-load profile is the zero value; its
	// structure must read as unknown, not as a fourth unnamed state.
	var p Profile
	if p.BusinessStructure != StructureUnknown {
		t.Errorf("zero structure = %q, want StructureUnknown", p.BusinessStructure)
	}
}

func TestTimeCommitmentMinutes(t *testing.T) {
	tests := []struct {
		tc   TimeCommitment
		want int
	}{
		{Commitment15, 15},
		{Commitment30, 30},
		{Commitment60, 60},
		{Commitment120, 120},
		{"", 30},
		{"whenever", 30},
	}
	for _, tt := range tests {
		if got := tt.tc.Minutes(); got != tt.want {
			t.Errorf("%q.Minutes() = %d, want %d", tt.tc, got, tt.want)
		}
	}
}
