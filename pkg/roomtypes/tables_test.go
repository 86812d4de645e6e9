package roomtypes

import "testing"

func TestLookupCoversEveryType(t *testing.T) {
	for _, typ := range All() {
		d := Lookup(typ)
		if d.MinAreaSqFt <= 0 || d.TargetAreaSqFt < d.MinAreaSqFt {
			t.Fatalf("%s: implausible defaults %+v", typ, d)
		}
	}
}

func TestNewPairCanonicalizesOrder(t *testing.T) {
	a := NewPair(Kitchen, Dining)
	b := NewPair(Dining, Kitchen)
	if a != b {
		t.Fatalf("NewPair order dependence: %+v != %+v", a, b)
	}
}

func TestHardAdjacencySymmetricLookup(t *testing.T) {
	if !IsHardAdjacent(Kitchen, Dining) {
		t.Fatal("expected Kitchen/Dining to be a hard adjacency pair")
	}
	if !IsHardAdjacent(Dining, Kitchen) {
		t.Fatal("expected hard adjacency lookup to be symmetric")
	}
	if IsHardAdjacent(Kitchen, Garage) {
		t.Fatal("did not expect Kitchen/Garage to be a hard adjacency pair")
	}
}

func TestSoftAndAntiAdjacencyWeights(t *testing.T) {
	if w := SoftAdjacencyWeight(Kitchen, Living); w <= 0 {
		t.Fatalf("expected a positive soft adjacency weight, got %v", w)
	}
	if w := AntiAdjacencyWeight(Garage, PrimaryBed); w <= 0 {
		t.Fatalf("expected a positive anti adjacency weight, got %v", w)
	}
	if w := SoftAdjacencyWeight(Storage, Porch); w != 0 {
		t.Fatalf("expected zero weight for an unlisted pair, got %v", w)
	}
}

func TestIsOpenConcept(t *testing.T) {
	if !IsOpenConcept(Kitchen, Living) {
		t.Fatal("expected Kitchen/Living to be open concept")
	}
	if IsOpenConcept(Kitchen, PrimaryBath) {
		t.Fatal("did not expect Kitchen/PrimaryBath to be open concept")
	}
}
