package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("resume", "job")
	b := BuildPrompt("resume", "job")
	assert.Equal(t, a, b)
}

func TestBuildPrompt_EmbedsBothInputs(t *testing.T) {
	prompt := BuildPrompt("RESUME-CONTENT-XYZ", "JOBDESC-CONTENT-ABC")

	assert.Contains(t, prompt, "RESUME-CONTENT-XYZ")
	assert.Contains(t, prompt, "JOBDESC-CONTENT-ABC")
}

func TestBuildPrompt_InstructsBracketedPlaceholders(t *testing.T) {
	prompt := BuildPrompt("r", "j")

	assert.Contains(t, prompt, "[Your Name]")
	assert.Contains(t, prompt, "square brackets")
	assert.Contains(t, prompt, "business letter format")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want any
	}{
		{"401 is auth", &googleapi.Error{Code: http.StatusUnauthorized}, &AuthError{}},
		{"403 is auth", &googleapi.Error{Code: http.StatusForbidden}, &AuthError{}},
		{"429 is rate limit", &googleapi.Error{Code: http.StatusTooManyRequests}, &RateLimitError{}},
		{"500 is service", &googleapi.Error{Code: http.StatusInternalServerError}, &ServiceError{}},
		{"timeout is service", context.DeadlineExceeded, &ServiceError{}},
		{"transport failure is service", errors.New("connection refused"), &ServiceError{}},
		{"wrapped api error keeps kind", fmt.Errorf("call failed: %w", &googleapi.Error{Code: 401}), &AuthError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.in)
			switch tt.want.(type) {
			case *AuthError:
				var e *AuthError
				assert.ErrorAs(t, got, &e)
			case *RateLimitError:
				var e *RateLimitError
				assert.ErrorAs(t, got, &e)
			case *ServiceError:
				var e *ServiceError
				assert.ErrorAs(t, got, &e)
			}
		})
	}
}

func TestClassifyError_PreservesCause(t *testing.T) {
	cause := &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota"}
	got := classifyError(cause)

	var apiErr *googleapi.Error
	assert.ErrorAs(t, got, &apiErr)
	assert.Equal(t, "quota", apiErr.Message)
}

func TestNewGeminiGenerator_MissingKeyIsAuthFailure(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", DefaultOptions())

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestFallback(t *testing.T) {
	assert.True(t, Fallback(&ServiceError{Cause: errors.New("boom")}))
	assert.True(t, Fallback(&RateLimitError{Cause: errors.New("quota")}))
	assert.True(t, Fallback(&EmptyResponseError{}))
	assert.False(t, Fallback(&AuthError{Cause: errors.New("bad key")}))
	assert.False(t, Fallback(errors.New("unrelated")))
}

func TestMockLetter_CarriesPlaceholders(t *testing.T) {
	assert.Contains(t, MockLetter, "[Your Name]")
	assert.Contains(t, MockLetter, "[Hiring Manager Name]")
	assert.True(t, strings.Contains(MockLetter, "mock cover letter"))
}
