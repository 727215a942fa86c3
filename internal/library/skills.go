package library

import "github.com/attune-health/attune/internal/domain"

var anyDimension = []string{domain.ApplicabilityAll}

// skills is the micro-skill catalog. Applicability uses AND semantics across
// the three dimensions; "all" matches anything in that dimension.
var skills = []domain.MicroSkill{
	{
		Type:        domain.SkillReflection,
		Description: "Mirror the speaker's feeling back in fresh words",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     anyDimension,
		},
		Examples: []string{
			"I hear how much this has been weighing on you.",
			"It sounds like this has been sitting with you for a while.",
		},
		Template: "It sounds like the {{emotion}} around this {{situation}} has been hard to carry.",
	},
	{
		Type:        domain.SkillValidation,
		Description: "Affirm that the feeling is legitimate and understandable",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     anyDimension,
		},
		Examples: []string{
			"Anyone in your position could feel this way.",
			"Your reaction makes a lot of sense given what you're facing.",
		},
		Template: "Feeling {{emotion}} in a {{situation}} like this is a very human response.",
	},
	{
		Type:        domain.SkillOpenQuestion,
		Description: "Invite elaboration without steering the answer",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageOpening), string(domain.StageAssessment), string(domain.StageIntervention)},
		},
		Examples: []string{
			"What feels most important for me to understand about this?",
			"Can you tell me more about what that's been like?",
		},
		Template: "What else would help me understand the {{situation}} you're in?",
	},
	{
		Type:        domain.SkillClarification,
		Description: "Check understanding of a specific detail",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageAssessment)},
		},
		Examples: []string{
			"When you say it's been getting worse, what does worse look like?",
			"Just so I follow, is this something recent or has it been building?",
		},
	},
	{
		Type:        domain.SkillSummary,
		Description: "Gather the threads of what has been shared",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageAssessment), string(domain.StageClosing)},
		},
		Examples: []string{
			"So far I'm hearing a few threads: the pressure itself, and how alone you feel inside it.",
			"Let me gather this up: a lot has changed at once, and it's been hard to find your footing.",
		},
	},
	{
		Type:        domain.SkillReframing,
		Description: "Offer an alternative, kinder frame for the same facts",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   []string{"shame", "hopelessness", "anxiety", "overwhelm"},
			Stages:     []string{string(domain.StageIntervention)},
		},
		Examples: []string{
			"Another way to see this: you're not failing, you're carrying an unusually heavy load.",
			"What you call weakness sounds a lot like endurance from where I sit.",
		},
		Template: "The {{emotion}} you feel may be less a flaw and more a signal about the {{situation}}.",
	},
	{
		Type:        domain.SkillAffirmation,
		Description: "Name a real strength the speaker has shown",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageIntervention), string(domain.StageClosing)},
		},
		Examples: []string{
			"It takes real strength to keep showing up the way you have.",
			"The fact that you're talking about this at all says something good about you.",
		},
	},
	{
		Type:        domain.SkillGentleChallenge,
		Description: "Question an unhelpful belief without confrontation",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   []string{"shame", "hopelessness", "anger"},
			Stages:     []string{string(domain.StageIntervention)},
		},
		Examples: []string{
			"I wonder whether the story you're telling about yourself is the only one the facts support.",
			"Would you judge a friend this harshly for the same thing?",
		},
	},
	{
		Type:        domain.SkillNormalization,
		Description: "Place the experience inside the range of common human struggle",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageOpening), string(domain.StageAssessment)},
		},
		Examples: []string{
			"Many people in similar situations describe exactly this feeling.",
			"Struggling with this doesn't make you broken; it makes you human.",
		},
		Template: "Many people facing a {{situation}} feel exactly this kind of {{emotion}}.",
	},
	{
		Type:        domain.SkillHoldingSpace,
		Description: "Slow the exchange and let the feeling simply exist",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   []string{"grief", "sadness", "hopelessness"},
			Stages:     []string{string(domain.StageOpening), string(domain.StageIntervention)},
		},
		Examples: []string{
			"There's no rush here; take whatever space you need with this.",
			"We can sit with this for a moment; it doesn't need fixing right away.",
		},
	},
	{
		Type:        domain.SkillDisclosure,
		Description: "Brief, general solidarity without shifting the focus",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageIntervention)},
		},
		Examples: []string{
			"You're not the only one who has stood in this exact spot.",
			"Plenty of people who seem fine on the outside know this feeling from the inside.",
		},
	},
	{
		Type:        domain.SkillImmediacy,
		Description: "Name what is happening in the conversation right now",
		Applicability: domain.Applicability{
			Situations: anyDimension,
			Emotions:   anyDimension,
			Stages:     []string{string(domain.StageIntervention), string(domain.StageClosing)},
		},
		Examples: []string{
			"I notice you've shared something quite vulnerable just now.",
			"Right here in this conversation, you're already doing something difficult.",
		},
	},
}

// Skills returns the micro-skill catalog.
func Skills() []domain.MicroSkill {
	return skills
}
