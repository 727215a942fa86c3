package service

import "github.com/attune-health/attune/internal/domain"

// defaultSessionLength is the assumed block size for a session's total
// length. Without an assumed total beyond the observed turns, the live
// turn would always be the last known turn and every conversation would
// sit at closing.
const defaultSessionLength = 10

// DetermineStage maps a turn's position to a conversational stage. Rules
// apply in priority order; stage is recomputed every turn, never persisted,
// so extending the conversation can move a previously "closing" turn back
// into an earlier stage.
func DetermineStage(turnIndex, totalTurns int) domain.Stage {
	switch {
	case turnIndex < 2:
		return domain.StageOpening
	case turnIndex == totalTurns-1:
		return domain.StageClosing
	case turnIndex < int(float64(totalTurns)*0.3):
		return domain.StageAssessment
	default:
		return domain.StageIntervention
	}
}

// StageForTurn derives the stage for the live turn given the prior history
// length. The assumed total is the next multiple of defaultSessionLength
// beyond the observed history, so the live turn is never pinned at the
// final index and a conversation outgrowing the assumed length falls back
// to intervention instead of staying at closing.
func StageForTurn(historyLen int) domain.Stage {
	total := (historyLen/defaultSessionLength + 1) * defaultSessionLength
	return DetermineStage(historyLen, total)
}
