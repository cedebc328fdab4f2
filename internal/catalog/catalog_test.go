package catalog

import "testing"

func TestAll_SortedByOrderIndex(t *testing.T) {
	lessons := All()
	if len(lessons) == 0 {
		t.Fatal("seed catalog is empty")
	}
	for i := 1; i < len(lessons); i++ {
		if lessons[i-1].OrderIndex > lessons[i].OrderIndex {
			t.Errorf("catalog out of order at %d: %d > %d", i, lessons[i-1].OrderIndex, lessons[i].OrderIndex)
		}
	}
}

func TestSeed_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range All() {
		if seen[l.ID] {
			t.Errorf("duplicate lesson id %q", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestSeed_ValidTags(t *testing.T) {
	valid := map[string]bool{
		TagSelfAssessment: true,
		TagTaxYearEnd:     true,
		TagNewTaxYear:     true,
		TagVATQuarter:     true,
		TagMTD:            true,
		TagGeneral:        true,
	}
	for _, l := range All() {
		for _, tag := range l.SeasonalTags {
			if !valid[tag] {
				t.Errorf("lesson %q carries unknown tag %q", l.ID, tag)
			}
		}
	}
}

func TestGet(t *testing.T) {
	l, ok := Get("vat-registration")
	if !ok {
		t.Fatal("vat-registration not found")
	}
	if !l.HasTag(TagMTD) {
		t.Error("vat-registration should carry the mtd tag")
	}
	if _, ok := Get("nope"); ok {
		t.Error("Get(\"nope\") found a lesson")
	}
}
