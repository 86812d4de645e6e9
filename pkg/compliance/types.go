// Package compliance implements stage 10: an independent consumer of a
// placed plan — a rule registry evaluated under a jurisdiction (spec
// §4.10). Grounded on the teacher's pkg/validation package (constraint
// checks returning a structured ConstraintResult, tallied into a single
// ValidationReport by a stateless Validator) and pkg/carving's
// CarverRegistry (named-entry registry with Register/Get), generalized
// from dungeon hard/soft constraints to IRC-style rules with severities
// and jurisdiction overrides.
package compliance

import (
	"time"

	"github.com/archspan/floorplan/pkg/plan"
)

// Severity strings are part of the external contract (spec.md §6) and
// must be preserved bit-for-bit.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Category strings are part of the external contract (spec.md §6).
const (
	CategoryRoomMinimums  = "room-minimums"
	CategoryEgress        = "egress"
	CategoryBathrooms     = "bathrooms"
	CategoryKitchens      = "kitchens"
	CategoryHallways      = "hallways"
	CategoryAccessibility = "accessibility"
	CategoryStructural    = "structural"
	CategoryEnergy        = "energy"
)

// Jurisdiction identifiers are part of the external contract (spec.md §6)
// and must be preserved bit-for-bit.
const (
	JurisdictionIRCBase    = "irc-base"
	JurisdictionColorado   = "colorado"
	JurisdictionCalifornia = "california"
	JurisdictionTexas      = "texas"
	JurisdictionFlorida    = "florida"
)

// anyJurisdiction marks a rule as applicable under every jurisdiction.
const anyJurisdiction = "*"

// Violation is a single evaluated rule finding (spec.md §3 "Violation").
type Violation struct {
	RuleID        string
	CodeSection   string
	Severity      string
	Message       string
	RoomID        string
	CurrentValue  float64
	RequiredValue float64
	Unit          string
	Remediation   []string
}

// RuleResult is the outcome of evaluating a single rule against a plan.
type RuleResult struct {
	RuleID          string
	CodeSection     string
	Category        string
	Passed          bool
	Skipped         bool
	Violations      []Violation
	ExecutionTimeMs float64
}

// Context is the Compliance Context (spec.md §3): jurisdiction and
// project parameters a rule's check function may consult.
type Context struct {
	Jurisdiction     string
	BuildingType     string
	ConstructionType string
	OccupantLoad     int
	SeismicZone      string
	WindSpeedMph     float64
	SnowLoadPsf      float64
	WUIZone          bool
	Params           map[string]string
}

// CheckFunc evaluates a rule against a placed plan and wall analysis.
// Implementations never mutate p or wa.
type CheckFunc func(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context) RuleResult

// Rule is the rule contract (spec.md §4.10 "Rule contract"). Rule values
// are shared by reference inside the registry; jurisdiction overrides
// clone a new *Rule rather than mutating the original (spec §4.10
// "Jurisdiction overrides").
type Rule struct {
	ID            string
	CodeSection   string
	Category      string
	Description   string
	Enabled       bool
	Jurisdictions []string
	Version       string
	Config        map[string]string
	DependsOn     []string
	Check         CheckFunc
}

// clone returns a shallow copy of the rule with independently owned
// Jurisdictions/Config/DependsOn slices/maps, so mutating the clone never
// affects the original registry entry.
func (r *Rule) clone() *Rule {
	out := *r
	out.Jurisdictions = append([]string(nil), r.Jurisdictions...)
	out.DependsOn = append([]string(nil), r.DependsOn...)
	if r.Config != nil {
		out.Config = make(map[string]string, len(r.Config))
		for k, v := range r.Config {
			out.Config[k] = v
		}
	}
	return &out
}

func (r *Rule) appliesToJurisdiction(j string) bool {
	for _, x := range r.Jurisdictions {
		if x == anyJurisdiction || x == j {
			return true
		}
	}
	return false
}

// Options are the rule-filter options (spec.md §6 "Rule-filter options").
type Options struct {
	IncludeRules      []string
	ExcludeRules      []string
	IncludeCategories []string
	ExcludeCategories []string
	StopOnCritical    bool
	MaxExecutionTime  time.Duration
	IncludeMetadata   bool
}

// Summary holds the report's tallied counters.
type Summary struct {
	Total             int
	Passed            int
	Failed            int
	Warnings          int
	Info              int
	Critical          int
	Skipped           int
	CompliancePercent float64
}

// Report is the Compliance Report (spec.md §3 "Compliance Report").
type Report struct {
	ID                string
	PlanID            string
	Jurisdiction      string
	Timestamp         time.Time
	OverallCompliance bool
	Results           []RuleResult
	Summary           Summary
	Context           Context
	EngineVersion     string
	RulesetVersion    string
	TotalElapsedMs    float64
}
