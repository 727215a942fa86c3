package library

import "github.com/attune-health/attune/internal/domain"

// situations is the ordered situation pattern table, first match wins.
var situations = []domain.SituationPattern{
	{
		Name:       "work_stress",
		Category:   "occupational",
		MatchRules: []string{"work", "job", "boss", "deadline", "performance review", "coworker", "career", "office", "workload"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"a bit stressful", "minor issue at work"},
			domain.SeverityModerate: {"really stressful", "under pressure"},
			domain.SeveritySevere:   {"getting fired", "lost my job", "can't take it anymore", "completely burned out"},
		},
		RelatedEmotions: []string{"anxiety", "overwhelm", "anger"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Work pressure like this can follow you home and color everything.",
				"It's understandable that the situation at work is weighing on you.",
				"A lot of people underestimate how draining workplace stress really is.",
			},
			domain.IntentExploration: {
				"What part of the work situation feels most out of your control?",
				"How is the stress showing up outside of work hours?",
				"What would a manageable week look like for you?",
			},
			domain.IntentReframing: {
				"Your worth isn't measured by one review or one hard season at work.",
				"A difficult stretch at work says something about the workload, not about you.",
			},
			domain.IntentCoping: {
				"Building a small buffer between the workday and your evening can help you decompress.",
				"Writing down tomorrow's top task before you log off can quiet the mental churn.",
			},
		},
	},
	{
		Name:       "relationship_conflict",
		Category:   "interpersonal",
		MatchRules: []string{"partner", "boyfriend", "girlfriend", "husband", "wife", "spouse", "my relationship", "we keep fighting", "breakup", "broke up", "argument with"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"small disagreement", "little argument"},
			domain.SeverityModerate: {"keep fighting", "serious argument"},
			domain.SeveritySevere:   {"about to leave", "can't stay together", "relationship is over"},
		},
		RelatedEmotions: []string{"anger", "sadness", "anxiety"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Conflict with someone you love hurts in a very particular way.",
				"It makes sense that this tension is taking up so much of your energy.",
				"Feeling unheard by your partner is genuinely painful.",
			},
			domain.IntentExploration: {
				"What do the arguments tend to circle back to?",
				"What do you wish your partner understood about your side?",
				"How do you both usually repair after a fight?",
			},
			domain.IntentReframing: {
				"Conflict can be a sign that both of you still care enough to fight for something.",
				"Two people can both be hurting and both be right about parts of it.",
			},
			domain.IntentCoping: {
				"Taking a pause before responding in the heat of the moment can change the whole conversation.",
				"Naming your feeling instead of your partner's fault tends to lower the temperature.",
			},
		},
	},
	{
		Name:       "family_issues",
		Category:   "interpersonal",
		MatchRules: []string{"my mom", "my dad", "my mother", "my father", "my parents", "my family", "my sister", "my brother", "my son", "my daughter", "in-laws"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"minor family tension", "small family disagreement"},
			domain.SeverityModerate: {"family conflict", "not speaking to"},
			domain.SeveritySevere:   {"estranged", "cut off contact", "family falling apart"},
		},
		RelatedEmotions: []string{"anger", "sadness", "shame"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Family dynamics run deep, and tension there touches everything else.",
				"It's hard when the people who are supposed to be closest are the source of the pain.",
				"Old family patterns can be incredibly difficult to step out of.",
			},
			domain.IntentExploration: {
				"How long has this pattern been playing out in your family?",
				"What role do you usually end up taking when things get tense?",
				"What would a healthier version of this relationship look like?",
			},
			domain.IntentReframing: {
				"You can love your family and still need distance from what hurts you.",
				"Setting a boundary with family is an act of care for the relationship, not against it.",
			},
			domain.IntentCoping: {
				"Deciding in advance what topics you won't engage with can make visits more bearable.",
				"A short check-in with yourself before family contact helps you stay grounded.",
			},
		},
	},
	{
		Name:       "health_concerns",
		Category:   "wellbeing",
		MatchRules: []string{"my health", "diagnosis", "diagnosed", "chronic pain", "illness", "symptoms", "doctor said", "medical", "test results"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"minor health", "small health scare"},
			domain.SeverityModerate: {"health is worrying", "ongoing symptoms"},
			domain.SeveritySevere:   {"serious diagnosis", "terminal", "getting worse fast"},
		},
		RelatedEmotions: []string{"anxiety", "hopelessness", "sadness"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Health uncertainty is frightening; your worry is completely understandable.",
				"Living with this on your mind every day is exhausting.",
				"It's natural for health concerns to shake your sense of safety.",
			},
			domain.IntentExploration: {
				"What part of the health situation worries you most?",
				"How has this been affecting your daily life?",
				"What support do you have around the medical side of things?",
			},
			domain.IntentReframing: {
				"Worry about your health shows how much you value your life, and that care can fuel good decisions.",
				"You are more than this diagnosis or these symptoms.",
			},
			domain.IntentCoping: {
				"Writing questions down before appointments can help you feel more in control.",
				"Limiting symptom-searching online to a set time can keep the anxiety from spiraling.",
			},
		},
	},
	{
		Name:       "financial_stress",
		Category:   "material",
		MatchRules: []string{"money", "debt", "bills", "rent", "can't afford", "paycheck", "broke", "financial", "savings"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"a little tight", "watching my spending"},
			domain.SeverityModerate: {"struggling with money", "behind on bills"},
			domain.SeveritySevere:   {"about to be evicted", "drowning in debt", "completely broke"},
		},
		RelatedEmotions: []string{"anxiety", "shame", "overwhelm"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Money stress is relentless because the bills keep arriving whether you're ready or not.",
				"Financial pressure touches survival instincts; of course it's consuming.",
				"There's no shame in struggling financially; it happens to careful people too.",
			},
			domain.IntentExploration: {
				"Which part of the financial picture feels most urgent?",
				"Is the stress more about right now, or about where things are heading?",
				"Who knows about what you're dealing with?",
			},
			domain.IntentReframing: {
				"Your bank balance is a situation, not a verdict on your worth.",
				"Small consistent steps matter more with money than dramatic fixes.",
			},
			domain.IntentCoping: {
				"Listing the obligations in one place often shrinks them from a fog into a solvable list.",
				"One call to a creditor or advisor this week is a concrete step you can control.",
			},
		},
	},
	{
		Name:       "social_isolation",
		Category:   "interpersonal",
		MatchRules: []string{"no friends", "no one to talk to", "by myself all", "never go out", "isolated from everyone", "don't know anyone"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"haven't seen friends lately"},
			domain.SeverityModerate: {"no one to talk to"},
			domain.SeveritySevere:   {"completely cut off", "weeks without talking"},
		},
		RelatedEmotions: []string{"loneliness", "sadness", "hopelessness"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Going without real connection for a long time wears on a person.",
				"Wanting more connection isn't neediness; it's human.",
				"It takes honesty to admit how isolated things have become.",
			},
			domain.IntentExploration: {
				"When did the circle start to shrink?",
				"What kinds of connection have felt good in the past?",
				"What gets in the way of reaching out?",
			},
			domain.IntentReframing: {
				"Isolation is a circumstance, and circumstances can shift one small contact at a time.",
				"The fact that you miss people means the capacity for connection is still there.",
			},
			domain.IntentCoping: {
				"One low-stakes interaction, like a regular coffee shop or class, can be a first thread back.",
				"Messaging one old friend this week is a small, doable experiment.",
			},
		},
	},
	{
		Name:       "life_transition",
		Category:   "change",
		MatchRules: []string{"moving to", "new city", "graduated", "new job", "just retired", "becoming a parent", "big change", "starting over", "divorce"},
		SeverityMarkers: map[domain.Severity][]string{
			domain.SeverityMild:     {"small change", "minor adjustment"},
			domain.SeverityModerate: {"big change", "everything is different"},
			domain.SeveritySevere:   {"lost everything familiar", "life turned upside down"},
		},
		RelatedEmotions: []string{"anxiety", "sadness", "overwhelm"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Even chosen changes involve real loss of the familiar.",
				"Transitions unsettle the ground under you; feeling wobbly is normal.",
				"It's okay to grieve the old chapter while starting the new one.",
			},
			domain.IntentExploration: {
				"What do you miss most about how things were?",
				"What part of the new situation feels most uncertain?",
				"What has helped you through past transitions?",
			},
			domain.IntentReframing: {
				"Feeling unsettled is evidence you're in motion, not evidence you made a mistake.",
				"New chapters usually feel wrong before they feel like home.",
			},
			domain.IntentCoping: {
				"Keeping one or two familiar routines can anchor you while everything else shifts.",
				"Giving the adjustment a realistic timeline, months rather than weeks, takes the pressure off.",
			},
		},
	},
}

// Situations returns the situation pattern library in match-priority order.
func Situations() []domain.SituationPattern {
	return situations
}
