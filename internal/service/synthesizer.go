package service

import (
	"math/rand"
	"strings"

	"github.com/attune-health/attune/internal/domain"
)

// Synthesizer weaves therapeutic text into a draft reply according to
// stage-specific interleaving rules.
type Synthesizer struct{}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize renders the selected skills into a single therapeutic block
// and interleaves it, together with the situation fragment, into the draft
// reply. All joins use a single space and the result is trimmed.
func (s *Synthesizer) Synthesize(originalReply string, skills []domain.MicroSkill, emotion, situation string, situationFragment string, stage domain.Stage, rng *rand.Rand) string {
	therapeutic := s.renderSkills(skills, emotion, situation, rng)

	var parts []string
	switch stage {
	case domain.StageOpening:
		parts = []string{therapeutic, situationFragment, originalReply}

	case domain.StageAssessment:
		sentences := splitSentences(originalReply)
		if len(sentences) < 2 {
			parts = []string{therapeutic, originalReply}
		} else {
			parts = append(parts, sentences[0], therapeutic)
			parts = append(parts, sentences[1:]...)
		}

	case domain.StageIntervention:
		sentences := splitSentences(originalReply)
		if len(sentences) < 3 {
			parts = []string{therapeutic, originalReply, situationFragment}
		} else {
			third := len(sentences) / 3
			parts = append(parts, sentences[:third]...)
			parts = append(parts, therapeutic)
			parts = append(parts, sentences[third:2*third]...)
			parts = append(parts, situationFragment)
			parts = append(parts, sentences[2*third:]...)
		}

	case domain.StageClosing:
		parts = []string{originalReply, therapeutic}

	default:
		parts = []string{therapeutic, originalReply}
	}

	return strings.TrimSpace(strings.Join(nonEmpty(parts), " "))
}

// renderSkills picks one sentence per skill: a random example, or the
// template with its slots filled when no examples exist.
func (s *Synthesizer) renderSkills(skills []domain.MicroSkill, emotion, situation string, rng *rand.Rand) string {
	var rendered []string
	for _, sk := range skills {
		switch {
		case len(sk.Examples) > 0:
			rendered = append(rendered, sk.Examples[rng.Intn(len(sk.Examples))])
		case sk.Template != "":
			rendered = append(rendered, fillTemplate(sk.Template, emotion, situation))
		}
	}
	return strings.Join(rendered, " ")
}

func fillTemplate(template, emotion, situation string) string {
	out := strings.ReplaceAll(template, "{{emotion}}", emotion)
	return strings.ReplaceAll(out, "{{situation}}", situation)
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence. This is a
// deliberate heuristic, not real sentence boundary detection; downstream
// interleaving depends on this exact behavior.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func nonEmpty(parts []string) []string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
