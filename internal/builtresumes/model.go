package builtresumes

import (
	"encoding/json"
	"time"
)

// BuiltResume keeps the user's raw builder input next to the model's
// rewritten resume so it can be edited and regenerated later.
type BuiltResume struct {
	ID                 string
	UserID             string
	Title              string
	UserInputData      json.RawMessage
	AIGeneratedContent json.RawMessage
	CreatedAt          time.Time
}
