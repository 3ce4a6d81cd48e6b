package cyclist

import "slices"

// Skill names.
const (
	SkillPerfectTiming      = "Perfect Timing"
	SkillQuickReflexes      = "Quick Reflexes"
	SkillCoinHunter         = "Coin Hunter"
	SkillRiskManagement     = "Risk Management"
	SkillPersistence        = "Persistence"
	SkillPatternRecognition = "Pattern Recognition"

	// SkillMastered is shown as the next goal once the catalog is exhausted.
	SkillMastered = "Master Cyclist"
)

// skillCatalog is the display order for the next skill to aim for.
// Risk Management and Pattern Recognition have no unlock rule.
var skillCatalog = []string{
	SkillPerfectTiming,
	SkillQuickReflexes,
	SkillCoinHunter,
	SkillRiskManagement,
	SkillPersistence,
	SkillPatternRecognition,
}

// skillRule unlocks a skill once its predicate holds.
type skillRule struct {
	name string
	met  func(RunState) bool
}

// skillRules are checked in this order every playing tick.
var skillRules = []skillRule{
	{SkillCoinHunter, func(r RunState) bool { return r.Coins >= 5 }},
	{SkillPersistence, func(r RunState) bool { return r.Distance >= 300 }},
	{SkillQuickReflexes, func(r RunState) bool { return r.Score >= 200 }},
	{SkillPerfectTiming, func(r RunState) bool { return r.Coins >= 10 }},
}

// SkillSet is an append-only set of skill names in unlock order.
type SkillSet struct {
	names []string
}

// Add unlocks a skill. It returns false if the skill was already unlocked.
func (s *SkillSet) Add(name string) bool {
	if s.Has(name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Has reports whether the skill is unlocked.
func (s *SkillSet) Has(name string) bool {
	return slices.Contains(s.names, name)
}

// Len returns the number of unlocked skills.
func (s *SkillSet) Len() int {
	return len(s.names)
}

// List returns a copy of the unlocked skills in unlock order.
func (s *SkillSet) List() []string {
	return slices.Clone(s.names)
}

// Next returns the first catalog skill not yet unlocked.
func (s *SkillSet) Next() string {
	for _, name := range skillCatalog {
		if !s.Has(name) {
			return name
		}
	}
	return SkillMastered
}

// unlockSkills evaluates every skill rule against the current run.
func (g *Game) unlockSkills() {
	for _, rule := range skillRules {
		if rule.met(g.run) && g.skills.Add(rule.name) {
			g.logger.Info("skill unlocked", "skill", rule.name)
		}
	}
}
