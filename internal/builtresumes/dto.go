package builtresumes

import (
	"encoding/json"
	"time"
)

// Response is the JSON shape of a built resume.
type Response struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Title              string          `json:"title"`
	UserInputData      json.RawMessage `json:"userInputData"`
	AIGeneratedContent json.RawMessage `json:"aiGeneratedContent"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func toResponse(r BuiltResume) Response {
	return Response{
		ID:                 r.ID,
		UserID:             r.UserID,
		Title:              r.Title,
		UserInputData:      orNull(r.UserInputData),
		AIGeneratedContent: orNull(r.AIGeneratedContent),
		CreatedAt:          r.CreatedAt,
	}
}

func orNull(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage("null")
	}
	return m
}
