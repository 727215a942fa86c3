// Package library holds the static pattern tables the classifiers and the
// skill selector operate on. Tables are ordered; declaration order is match
// priority throughout.
package library

import (
	"fmt"

	"github.com/attune-health/attune/internal/domain"
)

// emotionIntents are the fragment intents every emotion must provide.
var emotionIntents = []domain.ResponseIntent{
	domain.IntentValidation,
	domain.IntentExploration,
	domain.IntentSupport,
}

// situationIntents are the fragment intents every situation must provide.
var situationIntents = []domain.ResponseIntent{
	domain.IntentValidation,
	domain.IntentExploration,
	domain.IntentReframing,
	domain.IntentCoping,
}

// Validate checks the library invariants: globally unique names, at least
// one response fragment per required intent, at least one match rule per
// pattern, and skills that can always render something. Run at startup.
func Validate() error {
	emotionNames := make(map[string]bool, len(emotions))
	for _, e := range emotions {
		if e.Name == "" {
			return fmt.Errorf("emotion pattern with empty name")
		}
		if emotionNames[e.Name] {
			return fmt.Errorf("duplicate emotion name %q", e.Name)
		}
		emotionNames[e.Name] = true
		if len(e.MatchRules) == 0 {
			return fmt.Errorf("emotion %q has no match rules", e.Name)
		}
		for _, intent := range emotionIntents {
			if len(e.ResponseFragments[intent]) == 0 {
				return fmt.Errorf("emotion %q has no %s fragments", e.Name, intent)
			}
		}
	}

	situationNames := make(map[string]bool, len(situations))
	for _, s := range situations {
		if s.Name == "" {
			return fmt.Errorf("situation pattern with empty name")
		}
		if situationNames[s.Name] {
			return fmt.Errorf("duplicate situation name %q", s.Name)
		}
		situationNames[s.Name] = true
		if len(s.MatchRules) == 0 {
			return fmt.Errorf("situation %q has no match rules", s.Name)
		}
		for _, intent := range situationIntents {
			if len(s.ResponseFragments[intent]) == 0 {
				return fmt.Errorf("situation %q has no %s fragments", s.Name, intent)
			}
		}
		for _, rel := range s.RelatedEmotions {
			if !emotionNames[rel] && rel != "mixed" {
				return fmt.Errorf("situation %q references unknown emotion %q", s.Name, rel)
			}
		}
	}

	for _, sk := range skills {
		if len(sk.Examples) == 0 && sk.Template == "" {
			return fmt.Errorf("skill %q has neither examples nor a template", sk.Type)
		}
		if len(sk.Applicability.Situations) == 0 ||
			len(sk.Applicability.Emotions) == 0 ||
			len(sk.Applicability.Stages) == 0 {
			return fmt.Errorf("skill %q has an empty applicability dimension", sk.Type)
		}
	}

	return nil
}
