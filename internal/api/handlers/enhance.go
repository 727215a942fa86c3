package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/attune-health/attune/internal/domain"
	"github.com/attune-health/attune/internal/service"
	"github.com/google/uuid"
)

// SessionIDHeader carries the session identity when the body omits it.
const SessionIDHeader = "X-Session-ID"

type EnhanceHandler struct {
	svc *service.EnhancerService
}

func NewEnhanceHandler(svc *service.EnhancerService) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

type enhanceRequest struct {
	UserMessage         string         `json:"userMessage"`
	AIResponse          string         `json:"aiResponse"`
	ConversationHistory []string       `json:"conversationHistory"`
	SessionContext      map[string]any `json:"sessionContext,omitempty"`

	// Distinguishes an absent conversationHistory from an empty one.
	rawHistory json.RawMessage
}

func (r *enhanceRequest) UnmarshalJSON(data []byte) error {
	type alias enhanceRequest
	var a struct {
		alias
		ConversationHistory json.RawMessage `json:"conversationHistory"`
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = enhanceRequest(a.alias)
	r.rawHistory = a.ConversationHistory
	if len(a.ConversationHistory) > 0 && string(a.ConversationHistory) != "null" {
		if err := json.Unmarshal(a.ConversationHistory, &r.ConversationHistory); err != nil {
			return err
		}
	}
	return nil
}

func (r *enhanceRequest) historyPresent() bool {
	return len(r.rawHistory) > 0 && string(r.rawHistory) != "null"
}

type enhanceResponse struct {
	OriginalMessage     string                      `json:"originalMessage"`
	EnhancedMessage     string                      `json:"enhancedMessage"`
	EmotionAnalysis     emotionAnalysisResponse     `json:"emotionAnalysis"`
	SituationAnalysis   situationAnalysisResponse   `json:"situationAnalysis"`
	TherapeuticApproach therapeuticApproachResponse `json:"therapeuticApproach"`
	SessionContext      map[string]any              `json:"sessionContext"`
}

type emotionAnalysisResponse struct {
	PrimaryEmotion string         `json:"primaryEmotion"`
	Intensity      string         `json:"intensity"`
	EmotionScores  map[string]int `json:"emotionScores"`
}

type situationAnalysisResponse struct {
	Situation       string   `json:"situation"`
	Severity        string   `json:"severity"`
	RelatedEmotions []string `json:"relatedEmotions"`
	Category        string   `json:"category"`
}

type therapeuticApproachResponse struct {
	Stage      string              `json:"stage"`
	SkillsUsed []skillUsedResponse `json:"skillsUsed"`
}

type skillUsedResponse struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Enhance runs the enhancement pipeline for one conversational turn.
// POST /v1/enhance
func (h *EnhanceHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserMessage == "" {
		writeError(w, http.StatusBadRequest, "userMessage is required")
		return
	}
	if req.AIResponse == "" {
		writeError(w, http.StatusBadRequest, "aiResponse is required")
		return
	}
	if !req.historyPresent() {
		writeError(w, http.StatusBadRequest, "conversationHistory is required")
		return
	}

	input := domain.TurnInput{
		SessionID:      sessionID(&req, r),
		UserMessage:    req.UserMessage,
		DraftReply:     req.AIResponse,
		History:        req.ConversationHistory,
		SessionContext: req.SessionContext,
	}

	result, err := h.svc.Enhance(r.Context(), input)
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to enhance response", err.Error())
		return
	}

	resp := enhanceResponse{
		OriginalMessage: result.OriginalMessage,
		EnhancedMessage: result.EnhancedMessage,
		EmotionAnalysis: emotionAnalysisResponse{
			PrimaryEmotion: result.EmotionAnalysis.Emotion,
			Intensity:      string(result.EmotionAnalysis.Intensity),
			EmotionScores:  result.EmotionAnalysis.Scores,
		},
		SituationAnalysis: situationAnalysisResponse{
			Situation:       result.SituationAnalysis.Situation,
			Severity:        string(result.SituationAnalysis.Severity),
			RelatedEmotions: result.SituationAnalysis.RelatedEmotions,
			Category:        result.SituationAnalysis.Category,
		},
		TherapeuticApproach: therapeuticApproachResponse{
			Stage: string(result.Stage),
		},
		SessionContext: result.SessionContext,
	}
	for _, sk := range result.SkillsUsed {
		resp.TherapeuticApproach.SkillsUsed = append(resp.TherapeuticApproach.SkillsUsed, skillUsedResponse{
			Type:        string(sk.Type),
			Description: sk.Description,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// sessionID resolves session identity: sessionContext.sessionId, then the
// X-Session-ID header, then a fresh UUID (context starts over each turn).
func sessionID(req *enhanceRequest, r *http.Request) string {
	if id, ok := req.SessionContext["sessionId"].(string); ok && id != "" {
		return id
	}
	if id := r.Header.Get(SessionIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
