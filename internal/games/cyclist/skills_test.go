package cyclist

import (
	"slices"
	"testing"
)

func TestSkillSetAdd(t *testing.T) {
	var s SkillSet
	if !s.Add(SkillPersistence) {
		t.Error("First Add should succeed")
	}
	if s.Add(SkillPersistence) {
		t.Error("Duplicate Add should report false")
	}
	s.Add(SkillCoinHunter)

	if !slices.Equal(s.List(), []string{SkillPersistence, SkillCoinHunter}) {
		t.Errorf("List() = %v, expected unlock order", s.List())
	}

	list := s.List()
	list[0] = "mutated"
	if !s.Has(SkillPersistence) {
		t.Error("List() should return a copy")
	}
}

func TestSkillSetNext(t *testing.T) {
	tests := []struct {
		name     string
		unlocked []string
		want     string
	}{
		{"empty", nil, SkillPerfectTiming},
		{"first two", []string{SkillPerfectTiming, SkillQuickReflexes}, SkillCoinHunter},
		{"unlockable all", []string{SkillCoinHunter, SkillPersistence, SkillQuickReflexes, SkillPerfectTiming}, SkillRiskManagement},
		{"all catalog", slices.Clone(skillCatalog), SkillMastered},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s SkillSet
			for _, name := range tc.unlocked {
				s.Add(name)
			}
			if got := s.Next(); got != tc.want {
				t.Errorf("Next() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestUnlockSkillsPredicates(t *testing.T) {
	tests := []struct {
		name string
		run  RunState
		want []string
	}{
		{"nothing", RunState{Coins: 4, Distance: 299, Score: 199}, nil},
		{"coin hunter", RunState{Coins: 5}, []string{SkillCoinHunter}},
		{"persistence", RunState{Distance: 300}, []string{SkillPersistence}},
		{"quick reflexes", RunState{Score: 200}, []string{SkillQuickReflexes}},
		{"all", RunState{Coins: 10, Distance: 300, Score: 200},
			[]string{SkillCoinHunter, SkillPersistence, SkillQuickReflexes, SkillPerfectTiming}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.run = tc.run
			g.unlockSkills()
			if !slices.Equal(g.skills.List(), tc.want) {
				t.Errorf("Skills = %v, expected %v", g.skills.List(), tc.want)
			}
		})
	}
}

func TestUnreachableSkillsNeverUnlock(t *testing.T) {
	g, _ := newTestGame(t)
	g.run = RunState{Coins: 1000, Distance: 100000, Score: 100000}
	g.unlockSkills()

	if g.skills.Has(SkillRiskManagement) || g.skills.Has(SkillPatternRecognition) {
		t.Error("Risk Management and Pattern Recognition have no unlock rule")
	}
	if g.skills.Next() != SkillRiskManagement {
		t.Errorf("Next() = %q, expected %q", g.skills.Next(), SkillRiskManagement)
	}
}
