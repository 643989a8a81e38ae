package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AiInteraction is one entry of the append-only assistant log. Context
// holds the snapshot that was sent to the advisor.
type AiInteraction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Query     string          `json:"query"`
	Response  string          `json:"response"`
	Context   json.RawMessage `json:"context"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Insight is a single structured recommendation.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
