package compliance

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/archspan/floorplan/pkg/plan"
)

// EngineVersion and RulesetVersion are stamped onto every report (spec.md
// §3 "Compliance Report" — "engine/ruleset versions").
const (
	EngineVersion  = "1.0.0"
	RulesetVersion = "irc-2021.1"
)

// InvalidPlan is the sentinel hard-failure error (spec.md §7 "Hard
// failures"): a plan with no rooms or no doors cannot be evaluated.
type InvalidPlan struct {
	Reason string
}

func (e *InvalidPlan) Error() string {
	return fmt.Sprintf("<InvalidPlan>: %s", e.Reason)
}

// Engine is the compliance engine (spec.md §4.10, §6 "createEngine").
// Grounded on the teacher's pkg/validation.Validator — a stateless
// evaluator over a registry of checks — generalized with a jurisdiction
// amendment step ahead of evaluation.
type Engine struct {
	base *Registry
}

// CreateEngine seeds a fresh registry with the base rule library (spec.md
// §4.10 "Registry" — "Engine construction seeds the registry with the base
// library").
func CreateEngine() *Engine {
	reg := NewRegistry()
	for _, rule := range baseRuleLibrary() {
		reg.Register(rule)
	}
	return &Engine{base: reg}
}

// Registry exposes the engine's unamended base registry (spec.md §6
// "engine.ruleRegistry"). Callers may register/replace/enable rules on it
// between evaluations; jurisdiction amendments applied during Check never
// mutate it.
func (e *Engine) Registry() *Registry {
	return e.base
}

func baseRuleLibrary() []*Rule {
	var all []*Rule
	all = append(all, roomMinimumRules()...)
	all = append(all, egressRules()...)
	all = append(all, bathroomRules()...)
	all = append(all, kitchenRules()...)
	all = append(all, hallwayRules()...)
	all = append(all, accessibilityRules()...)
	all = append(all, structuralRules()...)
	all = append(all, energyRules()...)
	return all
}

// Check evaluates a placed plan under the given context (spec.md §4.10
// "Evaluation").
func (e *Engine) Check(p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context, opts Options) (Report, error) {
	if len(p.Rooms) == 0 {
		return Report{}, &InvalidPlan{Reason: "plan has no rooms"}
	}
	if len(p.Doors) == 0 {
		return Report{}, &InvalidPlan{Reason: "plan has no doors"}
	}

	jurisdiction := ctx.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = JurisdictionIRCBase
	}
	var working *Registry
	if j, ok := builtinJurisdictions()[jurisdiction]; ok {
		working = j.apply(e.base)
	} else {
		working = e.base.clone()
	}

	rules := filterRules(working.ListAll(), jurisdiction, opts)

	start := time.Now()
	results := make([]RuleResult, 0, len(rules))
	stopped := false
	for _, rule := range rules {
		if stopped {
			results = append(results, RuleResult{
				RuleID: rule.ID, CodeSection: rule.CodeSection, Category: rule.Category, Skipped: true,
			})
			continue
		}
		results = append(results, runRule(rule, p, wa, ctx, opts))
		if opts.StopOnCritical && hasErrorViolation(results[len(results)-1]) {
			stopped = true
		}
	}
	elapsed := time.Since(start)

	planID := p.RunID
	if planID == "" {
		planID = "unidentified-plan"
	}
	report := Report{
		ID:             fmt.Sprintf("report-%s-%s", jurisdiction, planID),
		PlanID:         planID,
		Jurisdiction:   jurisdiction,
		Timestamp:      time.Now(),
		Results:        results,
		Context:        ctx,
		EngineVersion:  EngineVersion,
		RulesetVersion: RulesetVersion,
	}
	report.Summary = tally(results)
	report.OverallCompliance = report.Summary.Failed == 0
	report.TotalElapsedMs = float64(elapsed.Microseconds()) / 1000.0
	return report, nil
}

// runRule invokes a single rule's Check, converting a panic into a
// synthetic error-severity violation rather than propagating it (spec.md
// §4.10 step 4, §7 "Hard failures").
func runRule(rule *Rule, p plan.PlacedPlan, wa plan.WallAnalysis, ctx Context, opts Options) (result RuleResult) {
	start := time.Now()
	defer func() {
		result.ExecutionTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
		if r := recover(); r != nil {
			result = RuleResult{
				RuleID: rule.ID, CodeSection: rule.CodeSection, Category: rule.Category,
				Passed: false,
				Violations: []Violation{{
					RuleID: rule.ID + "-execution-error", CodeSection: rule.CodeSection,
					Severity: SeverityError,
					Message:  fmt.Sprintf("rule %s panicked during evaluation: %v", rule.ID, r),
				}},
				ExecutionTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
			}
		}
		if opts.MaxExecutionTime > 0 && time.Since(start) > opts.MaxExecutionTime {
			log.Printf("compliance: rule %s exceeded its %s execution budget", rule.ID, opts.MaxExecutionTime)
		}
	}()
	result = rule.Check(p, wa, ctx)
	return result
}

func hasErrorViolation(r RuleResult) bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

func hasWarningViolation(r RuleResult) bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func hasInfoViolation(r RuleResult) bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityInfo {
			return true
		}
	}
	return false
}

func tally(results []RuleResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			s.Skipped++
		case hasErrorViolation(r):
			s.Failed++
			s.Critical++
		case hasWarningViolation(r):
			s.Passed++
			s.Warnings++
		case hasInfoViolation(r):
			s.Passed++
			s.Info++
		default:
			s.Passed++
		}
	}
	if s.Total > 0 {
		s.CompliancePercent = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// filterRules applies enabled/jurisdiction filtering then the run options'
// include/exclude filters (spec.md §4.10 step 3), in a stable id order.
func filterRules(rules []*Rule, jurisdiction string, opts Options) []*Rule {
	include := toSet(opts.IncludeRules)
	exclude := toSet(opts.ExcludeRules)
	includeCat := toSet(opts.IncludeCategories)
	excludeCat := toSet(opts.ExcludeCategories)

	out := make([]*Rule, 0, len(rules))
	for _, rule := range rules {
		if !rule.Enabled || !rule.appliesToJurisdiction(jurisdiction) {
			continue
		}
		if len(include) > 0 && !include[rule.ID] {
			continue
		}
		if exclude[rule.ID] {
			continue
		}
		if len(includeCat) > 0 && !includeCat[rule.Category] {
			continue
		}
		if excludeCat[rule.Category] {
			continue
		}
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[item] = true
	}
	return out
}

// RunComplianceCheck is the convenience wrapper (spec.md §6): build an
// engine, apply a jurisdiction, and evaluate in one call.
func RunComplianceCheck(p plan.PlacedPlan, wa plan.WallAnalysis, jurisdiction string, opts ...Options) (Report, error) {
	if jurisdiction == "" {
		jurisdiction = JurisdictionIRCBase
	}
	engine := CreateEngine()
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	ctx := Context{Jurisdiction: jurisdiction}
	return engine.Check(p, wa, ctx, o)
}
