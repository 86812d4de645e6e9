package roomtypes

import "testing"

func TestTypeStringRoundTrip(t *testing.T) {
	for _, typ := range All() {
		name := typ.String()
		got, ok := ParseType(name)
		if !ok {
			t.Fatalf("ParseType(%q) failed to resolve back", name)
		}
		if got != typ {
			t.Fatalf("ParseType(%q) = %v, want %v", name, got, typ)
		}
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(-1).String(); got == "" {
		t.Fatal("expected a non-empty placeholder for an out-of-range type")
	}
	if _, ok := ParseType("not-a-room"); ok {
		t.Fatal("expected ParseType to reject an unrecognized identifier")
	}
}

func TestZoneString(t *testing.T) {
	if ZoneSocial.String() != "social" {
		t.Fatalf("ZoneSocial.String() = %q, want %q", ZoneSocial.String(), "social")
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Fatalf("%s.Opposite() = %s, want %s", d, got, want)
		}
	}
}
