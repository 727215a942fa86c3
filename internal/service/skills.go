package service

import (
	"math/rand"

	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/library"
)

// defaultSkillCount is how many skills a turn applies when unspecified.
const defaultSkillCount = 2

// SkillSelector filters the micro-skill catalog by applicability and
// samples a subset. Randomness is injected so tests can seed it.
type SkillSelector struct {
	skills []domain.MicroSkill
}

// NewSkillSelector creates a selector over the built-in skill catalog.
func NewSkillSelector() *SkillSelector {
	return &SkillSelector{skills: library.Skills()}
}

// Select returns up to count skills eligible for the stage, emotion, and
// situation. All three applicability dimensions must admit the turn. An
// empty eligible set falls back to reflection plus open questioning.
func (s *SkillSelector) Select(stage domain.Stage, emotion, situation string, count int, rng *rand.Rand) []domain.MicroSkill {
	if count <= 0 {
		count = defaultSkillCount
	}

	var eligible []domain.MicroSkill
	for _, sk := range s.skills {
		if sk.Applicability.Matches(situation, emotion, stage) {
			eligible = append(eligible, sk)
		}
	}

	if len(eligible) == 0 {
		return s.fallbackPair()
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}

// fallbackPair is the fixed default when nothing is eligible.
func (s *SkillSelector) fallbackPair() []domain.MicroSkill {
	var pair []domain.MicroSkill
	for _, want := range []domain.SkillType{domain.SkillReflection, domain.SkillOpenQuestion} {
		for _, sk := range s.skills {
			if sk.Type == want {
				pair = append(pair, sk)
				break
			}
		}
	}
	return pair
}
