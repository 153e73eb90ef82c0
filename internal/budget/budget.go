// Package budget implements the pre-flight token admission check for
// generation requests.
package budget

import (
	"fmt"
)

// Part identifies which input violated its ceiling.
type Part string

// Violating parts. PartNone means the inputs passed admission.
const (
	PartNone    Part = "none"
	PartResume  Part = "resume"
	PartJobDesc Part = "job_description"
	PartTotal   Part = "total"
)

// Limits holds the configured token ceilings.
type Limits struct {
	ResumeMax  int
	JobDescMax int
	TotalMax   int
}

// Result reports the outcome of an admission check.
type Result struct {
	OK            bool
	Part          Part // first violation found, or PartNone
	ResumeTokens  int
	JobDescTokens int
	Limit         int // the ceiling the violating part exceeded, 0 if OK
}

// TotalTokens returns the combined token count of both inputs.
func (r Result) TotalTokens() int {
	return r.ResumeTokens + r.JobDescTokens
}

// ExceededError is the user-reportable form of a failed admission check.
type ExceededError struct {
	Part   Part
	Tokens int
	Limit  int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("token budget exceeded: %s is %d tokens, limit is %d", e.Part, e.Tokens, e.Limit)
}

// Err converts a failed Result into an ExceededError. Returns nil when the
// result passed.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	tokens := 0
	switch r.Part {
	case PartResume:
		tokens = r.ResumeTokens
	case PartJobDesc:
		tokens = r.JobDescTokens
	case PartTotal:
		tokens = r.TotalTokens()
	}
	return &ExceededError{Part: r.Part, Tokens: tokens, Limit: r.Limit}
}

// TokenCounter counts model tokens in text.
type TokenCounter interface {
	Count(text string) (int, error)
}

// Guard validates inputs against the configured ceilings before the external
// completion call is made.
type Guard struct {
	counter TokenCounter
	limits  Limits
}

// NewGuard creates a Guard over the given counter and limits.
func NewGuard(counter TokenCounter, limits Limits) *Guard {
	return &Guard{counter: counter, limits: limits}
}

// Validate checks the resume alone, then the job description alone, then the
// combined total, and reports the first violation found in that order. A
// tokenizer failure is returned as an error: admission cannot be decided on
// an unknown count.
func (g *Guard) Validate(resumeText, jobDesc string) (Result, error) {
	resumeTokens, err := g.counter.Count(resumeText)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count resume tokens: %w", err)
	}
	jobDescTokens, err := g.counter.Count(jobDesc)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count job description tokens: %w", err)
	}

	res := Result{
		ResumeTokens:  resumeTokens,
		JobDescTokens: jobDescTokens,
	}

	switch {
	case resumeTokens > g.limits.ResumeMax:
		res.Part = PartResume
		res.Limit = g.limits.ResumeMax
	case jobDescTokens > g.limits.JobDescMax:
		res.Part = PartJobDesc
		res.Limit = g.limits.JobDescMax
	case resumeTokens+jobDescTokens > g.limits.TotalMax:
		res.Part = PartTotal
		res.Limit = g.limits.TotalMax
	default:
		res.OK = true
		res.Part = PartNone
	}

	return res, nil
}
