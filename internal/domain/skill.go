package domain

// SkillType identifies a therapeutic micro-skill.
type SkillType string

const (
	SkillReflection      SkillType = "reflection"
	SkillValidation      SkillType = "validation"
	SkillOpenQuestion    SkillType = "open-question"
	SkillClarification   SkillType = "clarification"
	SkillSummary         SkillType = "summary"
	SkillReframing       SkillType = "reframing"
	SkillAffirmation     SkillType = "affirmation"
	SkillGentleChallenge SkillType = "gentle-challenge"
	SkillNormalization   SkillType = "normalization"
	SkillHoldingSpace    SkillType = "holding-space"
	SkillDisclosure      SkillType = "disclosure"
	SkillImmediacy       SkillType = "immediacy"
)

// ApplicabilityAll matches any value in an applicability dimension.
const ApplicabilityAll = "all"

// Applicability restricts a skill to certain situations, emotions, and stages.
// All three dimensions must match for the skill to be eligible.
type Applicability struct {
	Situations []string
	Emotions   []string
	Stages     []string
}

// Matches reports whether every dimension admits the given values.
func (a Applicability) Matches(situation, emotion string, stage Stage) bool {
	return dimensionMatches(a.Situations, situation) &&
		dimensionMatches(a.Emotions, emotion) &&
		dimensionMatches(a.Stages, string(stage))
}

func dimensionMatches(allowed []string, value string) bool {
	for _, v := range allowed {
		if v == ApplicabilityAll || v == value {
			return true
		}
	}
	return false
}

// MicroSkill is a reusable therapeutic response pattern.
type MicroSkill struct {
	Type          SkillType
	Description   string
	Applicability Applicability
	Examples      []string
	// Template is a fallback sentence skeleton with {{emotion}} and
	// {{situation}} slots, used when Examples is empty.
	Template string
}
