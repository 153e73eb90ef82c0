package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/covercraft/internal/placeholder"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ResumeResponse reports the outcome of a resume upload.
type ResumeResponse struct {
	Filename     string `json:"filename"`
	TokenCount   int    `json:"token_count"`
	TokenDisplay string `json:"token_display"`
	Truncated    bool   `json:"truncated"`
	Preview      string `json:"preview"`
}

// JobDescriptionResponse reports the outcome of setting the job description.
type JobDescriptionResponse struct {
	Source       string `json:"source"` // "text" or "url"
	TokenCount   int    `json:"token_count"`
	TokenDisplay string `json:"token_display"`
	Preview      string `json:"preview"`
}

// GenerateResponse carries the generated letter and its personalization
// fields.
type GenerateResponse struct {
	Letter        string              `json:"letter"`
	Cached        bool                `json:"cached"`
	Mock          bool                `json:"mock,omitempty"`
	Fields        []placeholder.Field `json:"fields"`
	ResumeTokens  int                 `json:"resume_tokens"`
	JobDescTokens int                 `json:"job_desc_tokens"`
}

// PersonalizeResponse carries the personalized letter.
type PersonalizeResponse struct {
	Letter string `json:"letter"`
}

// BudgetErrorResponse reports which input exceeded its token budget.
type BudgetErrorResponse struct {
	Error         string `json:"error"`
	Part          string `json:"part"`
	Limit         int    `json:"limit"`
	ResumeTokens  int    `json:"resume_tokens"`
	JobDescTokens int    `json:"job_desc_tokens"`
}

// MissingFieldsResponse reports personalization fields left empty.
type MissingFieldsResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields"`
}
