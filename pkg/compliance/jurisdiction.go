package compliance

// Amendment replaces one existing rule's check function and version when
// its jurisdiction is active (spec.md §4.10 "Jurisdiction overrides").
type Amendment struct {
	RuleID  string
	Check   CheckFunc
	Version string
}

// Jurisdiction bundles the amendments and wholly new rules a jurisdiction
// contributes on top of the base library.
type Jurisdiction struct {
	ID            string
	Amendments    []Amendment
	AdditionalRules []*Rule
}

// apply returns a new registry: a clone of base with this jurisdiction's
// amendments applied (clone-before-mutate, never touching base) plus any
// additional rules it contributes. Passing the zero Jurisdiction (unknown
// id) returns an unamended clone, matching "irc-base" behavior.
func (j Jurisdiction) apply(base *Registry) *Registry {
	working := base.clone()
	for _, amendment := range j.Amendments {
		rule, ok := working.Get(amendment.RuleID)
		if !ok {
			continue
		}
		amended := rule.clone()
		amended.Check = amendment.Check
		amended.Version = amendment.Version
		working.Replace(amended)
	}
	for _, extra := range j.AdditionalRules {
		working.Register(extra)
	}
	return working
}

// jurisdictions returns the built-in jurisdiction table. irc-base is the
// implicit zero-amendment baseline and is not listed explicitly here;
// california, texas, and florida are currently unamended relative to
// irc-base (see DESIGN.md) and so are also omitted — looking one up by id
// and finding nothing yields the base registry untouched, which is the
// correct behavior for all four of those jurisdictions.
func builtinJurisdictions() map[string]Jurisdiction {
	return map[string]Jurisdiction{
		JurisdictionColorado: coloradoJurisdiction(),
	}
}
