// Package types provides request and response definitions for the cover
// letter API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// JobDescriptionRequest carries the job description as pasted text or as a
// posting URL to fetch. Exactly one of the two should be set; text wins when
// both are present.
type JobDescriptionRequest struct {
	Text string `json:"text" validate:"required_without=URL"`
	URL  string `json:"url" validate:"omitempty,url"`
}

// PersonalizeRequest carries the values for the personalization fields,
// keyed by field label.
type PersonalizeRequest struct {
	Values map[string]string `json:"values" validate:"required"`
}

// GenerateRequest carries optional overrides for letter generation.
type GenerateRequest struct {
	// ForceRegenerate bypasses the session letter cache.
	ForceRegenerate bool `json:"force_regenerate,omitempty"`
}

// Validate validates the JobDescriptionRequest using the validator.
func (r *JobDescriptionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PersonalizeRequest using the validator.
func (r *PersonalizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
