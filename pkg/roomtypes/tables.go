package roomtypes

// Defaults holds the per-type sizing and requirement table entry for a room
// type (spec.md §3 "Room-default table").
type Defaults struct {
	MinAreaSqFt    float64
	TargetAreaSqFt float64
	MinWidthFt     float64
	MinDepthFt     float64
	NeedsExterior  bool
	NeedsPlumbing  bool
	Zone           Zone
}

// defaultTable is a dense array indexed by Type, initialized once at package
// load. Grounded on the teacher's dense-array-by-enum convention in
// pkg/graph/room.go and pkg/carving/types.go (TileType-keyed constants).
var defaultTable = [typeCount]Defaults{
	PrimaryBed:    {160, 220, 12, 12, true, false, ZonePrivate},
	Bedroom:       {100, 140, 10, 10, true, false, ZonePrivate},
	PrimaryBath:   {60, 95, 7, 7, false, true, ZonePrivate},
	Bathroom:      {36, 55, 5, 6, false, true, ZonePrivate},
	PowderRoom:    {18, 28, 4, 4, false, true, ZoneSocial},
	Kitchen:       {120, 185, 10, 10, true, true, ZoneSocial},
	Dining:        {100, 145, 10, 10, true, false, ZoneSocial},
	Living:        {200, 275, 13, 13, true, false, ZoneSocial},
	Family:        {180, 260, 13, 13, true, false, ZoneSocial},
	GreatRoom:     {240, 340, 15, 15, true, false, ZoneSocial},
	Office:        {80, 120, 9, 9, true, false, ZonePrivate},
	Den:           {90, 130, 9, 9, false, false, ZoneSocial},
	Laundry:       {35, 50, 6, 6, false, true, ZoneService},
	Mudroom:       {35, 55, 6, 6, true, false, ZoneService},
	Pantry:        {20, 35, 4, 5, false, false, ZoneService},
	Foyer:         {50, 75, 6, 7, true, false, ZoneSocial},
	Hallway:       {24, 40, 3, 6, false, false, ZoneCirculation},
	WalkInCloset:  {24, 40, 4, 5, false, false, ZonePrivate},
	Stairs:        {40, 60, 4, 9, false, false, ZoneCirculation},
	Garage:        {220, 450, 12, 20, true, false, ZoneGarage},
	Sunroom:       {100, 160, 9, 10, true, false, ZoneSocial},
	BreakfastNook: {60, 100, 7, 8, true, false, ZoneSocial},
	Utility:       {24, 40, 5, 5, false, true, ZoneService},
	Storage:       {20, 40, 4, 5, false, false, ZoneService},
	Porch:         {40, 80, 5, 8, true, false, ZoneExterior},
	Bonus:         {130, 200, 11, 11, false, false, ZonePrivate},
}

// Lookup returns the default sizing/requirement entry for a room type.
func Lookup(t Type) Defaults {
	return defaultTable[t]
}

// Pair is an unordered room-type pair used as a map key for the adjacency
// tables. Callers should construct it with NewPair, which canonicalizes
// ordering so (A,B) and (B,A) hash identically.
type Pair struct {
	A, B Type
}

// NewPair returns a canonicalized pair (lower enum value first).
func NewPair(a, b Type) Pair {
	if a <= b {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// hardAdjacency lists must-touch IRC-style pairs (spec.md §3 Adjacency Tables).
var hardAdjacency = map[Pair]bool{
	NewPair(PrimaryBed, PrimaryBath): true,
	NewPair(PrimaryBed, WalkInCloset): true,
	NewPair(Kitchen, Dining):         true,
	NewPair(Foyer, Hallway):          true,
	NewPair(Garage, Mudroom):         true,
}

// softAdjacency lists preferred pairs with a positive scoring weight.
var softAdjacency = map[Pair]float64{
	NewPair(Kitchen, Living):     18,
	NewPair(Kitchen, Family):     18,
	NewPair(Kitchen, GreatRoom):  20,
	NewPair(Foyer, Living):       14,
	NewPair(Foyer, Family):       14,
	NewPair(Foyer, GreatRoom):    14,
	NewPair(Dining, Living):      10,
	NewPair(Laundry, Mudroom):    12,
	NewPair(Kitchen, Pantry):     16,
	NewPair(Kitchen, BreakfastNook): 16,
	NewPair(Garage, Kitchen):     8,
}

// antiAdjacency lists pairs that should not share an edge, with a positive
// magnitude used to compute a scoring penalty.
var antiAdjacency = map[Pair]float64{
	NewPair(Garage, Bedroom):     20,
	NewPair(Garage, PrimaryBed):  24,
	NewPair(Bathroom, Kitchen):   16,
	NewPair(Bathroom, Dining):    16,
	NewPair(PrimaryBath, Kitchen): 16,
	NewPair(Laundry, Bedroom):    10,
}

// openConcept lists pairs where no interior wall or door is required
// between the two rooms when they are adjacent.
var openConcept = map[Pair]bool{
	NewPair(Kitchen, Living):    true,
	NewPair(Kitchen, Family):    true,
	NewPair(Kitchen, GreatRoom): true,
	NewPair(Living, Dining):     true,
	NewPair(Family, Dining):     true,
}

// IsHardAdjacent reports whether a and b must share an edge.
func IsHardAdjacent(a, b Type) bool { return hardAdjacency[NewPair(a, b)] }

// SoftAdjacencyWeight returns the positive scoring weight for a soft
// adjacency preference, or 0 if the pair carries none.
func SoftAdjacencyWeight(a, b Type) float64 { return softAdjacency[NewPair(a, b)] }

// AntiAdjacencyWeight returns the positive penalty magnitude for an anti
// adjacency pair, or 0 if the pair carries none.
func AntiAdjacencyWeight(a, b Type) float64 { return antiAdjacency[NewPair(a, b)] }

// IsOpenConcept reports whether a and b are exempt from requiring an
// interior wall/door when adjacent.
func IsOpenConcept(a, b Type) bool { return openConcept[NewPair(a, b)] }

// HardAdjacencyPairs returns every hard-adjacency pair, used by scoring to
// compute "applicable" pair sets.
func HardAdjacencyPairs() []Pair {
	out := make([]Pair, 0, len(hardAdjacency))
	for p := range hardAdjacency {
		out = append(out, p)
	}
	return out
}

// SoftAdjacencyPairs returns every soft-adjacency pair with its weight.
func SoftAdjacencyPairs() map[Pair]float64 {
	out := make(map[Pair]float64, len(softAdjacency))
	for p, w := range softAdjacency {
		out[p] = w
	}
	return out
}

// AntiAdjacencyPairs returns every anti-adjacency pair with its magnitude.
func AntiAdjacencyPairs() map[Pair]float64 {
	out := make(map[Pair]float64, len(antiAdjacency))
	for p, w := range antiAdjacency {
		out[p] = w
	}
	return out
}
