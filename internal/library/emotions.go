package library

import "github.com/attune-health/attune/internal/domain"

// emotions is the ordered emotion pattern table. Declaration order is match
// priority: the classifier stops at the first pattern that matches.
var emotions = []domain.EmotionPattern{
	{
		Name:       "anxiety",
		Category:   "fear-based",
		MatchRules: []string{"anxious", "anxiety", "nervous", "worried", "worrying", "panic", "on edge", "uneasy", "dread"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a little anxious", "slightly nervous", "a bit worried", "somewhat uneasy"},
			domain.IntensityModerate: {"pretty anxious", "quite worried", "really nervous"},
			domain.IntensityStrong:   {"panic attack", "terrified", "can't breathe", "paralyzed with", "constant dread"},
		},
		SomaticExperiences: []string{"racing heart", "tight chest", "sweaty palms", "knot in my stomach", "shaky", "can't sit still"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"It makes complete sense that you'd feel anxious about this.",
				"Anxiety like this is your mind trying to protect you, even when it feels awful.",
				"That sounds like a lot of worry to be carrying around.",
			},
			domain.IntentExploration: {
				"When do you notice the anxiety is strongest?",
				"What does the worry tell you might happen?",
				"Where do you feel the anxiety in your body?",
			},
			domain.IntentSupport: {
				"You've gotten through anxious moments before, and you can get through this one.",
				"Taking one slow breath right now can give your body a small signal of safety.",
				"You don't have to face all of this at once.",
			},
		},
	},
	{
		Name:       "sadness",
		Category:   "low-mood",
		MatchRules: []string{"sad", "feeling down", "depressed", "unhappy", "miserable", "crying", "tearful", "blue", "heavy-hearted"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a little sad", "kind of down", "a bit low"},
			domain.IntensityModerate: {"really sad", "pretty down", "so unhappy"},
			domain.IntensityStrong:   {"can't stop crying", "completely miserable", "deeply depressed", "nothing matters"},
		},
		SomaticExperiences: []string{"heavy chest", "no energy", "tired all the time", "lump in my throat", "can't get out of bed"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"That sadness sounds really heavy.",
				"It's okay to feel this low; sadness is a real and valid response.",
				"I hear how much pain is underneath what you're describing.",
			},
			domain.IntentExploration: {
				"How long have you been feeling this way?",
				"What does the sadness feel like day to day?",
				"Is there a moment when the heaviness lifts, even a little?",
			},
			domain.IntentSupport: {
				"Being gentle with yourself right now matters more than being productive.",
				"Small things count on days like this, even just getting up.",
				"You don't have to carry this alone.",
			},
		},
	},
	{
		Name:       "anger",
		Category:   "activation",
		MatchRules: []string{"angry", "furious", "frustrated", "irritated", "fed up", "rage", "pissed", "resentful"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a little frustrated", "mildly annoyed", "slightly irritated"},
			domain.IntensityModerate: {"really frustrated", "pretty angry", "so irritated"},
			domain.IntensityStrong:   {"absolutely furious", "blind rage", "want to scream", "seeing red"},
		},
		SomaticExperiences: []string{"clenched jaw", "hot face", "tense shoulders", "pounding heart", "tight fists"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Your anger makes sense; something important to you feels violated.",
				"Frustration like this usually points at something that really matters.",
				"It sounds like you've been holding a lot of this in.",
			},
			domain.IntentExploration: {
				"What feels most unfair about the situation?",
				"When did you first notice the anger building?",
				"What would you want the other person to understand?",
			},
			domain.IntentSupport: {
				"Anger is information; you get to decide what to do with it.",
				"Giving the anger some room to breathe, instead of swallowing it, is healthy.",
				"You're allowed to set a boundary here.",
			},
		},
	},
	{
		Name:       "loneliness",
		Category:   "disconnection",
		MatchRules: []string{"lonely", "alone", "isolated", "no one understands", "disconnected", "left out", "invisible"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a bit lonely", "somewhat isolated"},
			domain.IntensityModerate: {"really lonely", "so alone"},
			domain.IntensityStrong:   {"completely alone", "utterly isolated", "nobody cares"},
		},
		SomaticExperiences: []string{"empty feeling", "ache in my chest", "numbness", "restlessness"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Loneliness is one of the hardest feelings to sit with.",
				"Feeling unseen by the people around you is genuinely painful.",
				"It takes courage to say out loud that you feel alone.",
			},
			domain.IntentExploration: {
				"When do you feel the loneliness most sharply?",
				"Is there anyone, past or present, you've felt truly seen by?",
				"What kind of connection are you missing most?",
			},
			domain.IntentSupport: {
				"Reaching out, even like this, is already a step toward connection.",
				"One small moment of contact today can soften the edge of this.",
				"You matter, even on the days no one says it.",
			},
		},
	},
	{
		Name:       "grief",
		Category:   "loss",
		MatchRules: []string{"grief", "grieving", "passed away", "died", "loss of", "lost my", "mourning", "miss them", "miss her", "miss him"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"still think about", "miss them sometimes"},
			domain.IntensityModerate: {"really miss", "grieving hard"},
			domain.IntensityStrong:   {"can't go on without", "unbearable loss", "devastated"},
		},
		SomaticExperiences: []string{"hollow feeling", "waves of pain", "exhaustion", "tight throat"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Grief is love with nowhere to go, and it sounds like you loved deeply.",
				"There's no timetable for this kind of loss.",
				"What you're feeling is the weight of something that truly mattered.",
			},
			domain.IntentExploration: {
				"What do you miss most right now?",
				"How has the loss been showing up in your days?",
				"Would you like to tell me about them?",
			},
			domain.IntentSupport: {
				"Let the grief come in waves; you don't have to hold it back.",
				"Honoring their memory can live alongside moving through your day.",
				"Be as patient with yourself as you would be with a dear friend.",
			},
		},
	},
	{
		Name:       "overwhelm",
		Category:   "stress",
		MatchRules: []string{"overwhelmed", "too much", "can't cope", "burned out", "burnt out", "exhausted", "drowning", "stretched thin"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a bit much", "slightly overwhelmed"},
			domain.IntensityModerate: {"really overwhelmed", "so much going on"},
			domain.IntensityStrong:   {"completely drowning", "can't function", "breaking point"},
		},
		SomaticExperiences: []string{"racing thoughts", "tension headache", "shallow breathing", "fatigue"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"No wonder you feel overwhelmed; that's a lot for one person to hold.",
				"When everything piles up at once, feeling like you can't cope is a natural response.",
				"It sounds like you've been running on empty for a while.",
			},
			domain.IntentExploration: {
				"If you could set one thing down, what would it be?",
				"What's taking up the most space in your mind right now?",
				"When did the load start feeling unmanageable?",
			},
			domain.IntentSupport: {
				"You only have to take the very next step, not the whole staircase.",
				"Permission to rest is not the same as giving up.",
				"Breaking this into smaller pieces can make it feel survivable.",
			},
		},
	},
	{
		Name:       "shame",
		Category:   "self-evaluative",
		MatchRules: []string{"ashamed", "shame", "embarrassed", "humiliated", "guilty", "guilt", "my fault", "hate myself", "worthless"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"a little embarrassed", "feel kind of bad"},
			domain.IntensityModerate: {"really ashamed", "so guilty"},
			domain.IntensityStrong:   {"completely humiliated", "despise myself", "unforgivable"},
		},
		SomaticExperiences: []string{"flushed face", "wanting to hide", "sinking feeling", "avoiding eye contact"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"Shame thrives in silence, so it means something that you're speaking it.",
				"Making a mistake doesn't make you a mistake.",
				"That self-critical voice sounds punishing to live with.",
			},
			domain.IntentExploration: {
				"Whose voice does that self-judgment sound like?",
				"What would you say to a friend who did the same thing?",
				"What are you afraid it says about you?",
			},
			domain.IntentSupport: {
				"You are allowed to be a person who is still learning.",
				"Self-compassion isn't letting yourself off the hook; it's how people actually change.",
				"This feeling is heavy, but it is not the truth about who you are.",
			},
		},
	},
	{
		Name:       "hopelessness",
		Category:   "low-mood",
		MatchRules: []string{"hopeless", "pointless", "no point", "give up", "giving up", "never get better", "what's the use", "stuck forever"},
		IntensityMarkers: map[domain.Intensity][]string{
			domain.IntensityMild:     {"starting to lose hope", "hard to see the point"},
			domain.IntensityModerate: {"feels pointless", "losing hope"},
			domain.IntensityStrong:   {"completely hopeless", "nothing will ever change", "no way out"},
		},
		SomaticExperiences: []string{"heaviness", "numbness", "no appetite", "sleeping too much"},
		ResponseFragments: map[domain.ResponseIntent][]string{
			domain.IntentValidation: {
				"When hope runs low, everything gets harder; I'm glad you're saying this out loud.",
				"Feeling stuck doesn't mean you are stuck, but it's real that it feels that way.",
				"That sounds like a very dark place to be standing right now.",
			},
			domain.IntentExploration: {
				"Was there a time, even briefly, when things felt different?",
				"What would the smallest sign of change look like for you?",
				"What's kept you going up to this point?",
			},
			domain.IntentSupport: {
				"Hope can be borrowed; let someone else hold it for you for a while.",
				"You don't need to believe things will improve to take one small step.",
				"Right now, getting through today is enough.",
			},
		},
	},
}

// Emotions returns the emotion pattern library in match-priority order.
func Emotions() []domain.EmotionPattern {
	return emotions
}
