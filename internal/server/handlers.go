package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/covercraft/internal/budget"
	"github.com/jonathan/covercraft/internal/export"
	"github.com/jonathan/covercraft/internal/fetch"
	"github.com/jonathan/covercraft/internal/generation"
	"github.com/jonathan/covercraft/internal/ingestion"
	"github.com/jonathan/covercraft/internal/placeholder"
	"github.com/jonathan/covercraft/internal/session"
	"github.com/jonathan/covercraft/internal/types"
)

const (
	sessionCookieName = "session_id"
	sessionHeaderName = "X-Session-ID"

	// maxUploadBytes caps resume uploads; real resumes are far smaller.
	maxUploadBytes = 10 << 20

	// previewLength is how much input text is echoed back for display.
	previewLength = 500
)

// handleCreateSession creates a new session and returns its ID, also setting
// it as a cookie for browser clients.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Create()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.jsonResponse(w, http.StatusCreated, types.SessionResponse{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	})
}

// sessionFromRequest resolves the request's session from the X-Session-ID
// header or the session cookie.
func (s *Server) sessionFromRequest(r *http.Request) (*session.Session, error) {
	raw := r.Header.Get(sessionHeaderName)
	if raw == "" {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			return nil, &ErrSessionNotFound{}
		}
		raw = cookie.Value
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &ErrSessionNotFound{}
	}

	sess, ok := s.store.Get(id)
	if !ok {
		return nil, &ErrSessionNotFound{}
	}
	return sess, nil
}

// handleResume accepts a multipart PDF upload, extracts and cleans its text,
// and stores it on the session. Uploading a new resume drops any previously
// generated letter.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.handleError(w, &ErrValidation{Message: msgNoResumeFile})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.handleError(w, &ErrValidation{Message: msgNoResumeFile})
		return
	}
	defer file.Close()

	if !ingestion.ValidFileType(header.Filename, s.app.SupportedExtensions) {
		s.handleError(w, &ErrInvalidFileType{Filename: header.Filename})
		return
	}

	text, err := ingestion.ExtractPDFText(file, header.Size)
	if err != nil {
		s.handleError(w, err)
		return
	}
	text = ingestion.CleanText(text)

	tokens, err := s.counter.Count(text)
	if err != nil {
		s.handleError(w, err)
		return
	}

	truncated := false
	if tokens > s.app.ResumeMaxTokens {
		text, tokens, err = s.counter.Truncate(text, s.app.ResumeMaxTokens)
		if err != nil {
			s.handleError(w, err)
			return
		}
		truncated = true
	}

	sess.ResumeText = text
	sess.ResumeFilename = header.Filename
	sess.ResumeTokens = tokens
	sess.ResetGeneration()

	s.jsonResponse(w, http.StatusOK, types.ResumeResponse{
		Filename:     header.Filename,
		TokenCount:   tokens,
		TokenDisplay: ingestion.FormatTokenCount(tokens),
		Truncated:    truncated,
		Preview:      ingestion.TruncateForDisplay(text, previewLength),
	})
}

// handleJobDescription accepts the job description as pasted text or as a
// posting URL to fetch and extract. Changing the job description drops any
// previously generated letter.
func (s *Server) handleJobDescription(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	var req types.JobDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	source := "text"
	text := req.Text
	if text == "" {
		source = "url"
		opts := fetch.DefaultOptions()
		opts.UseBrowser = s.app.UseBrowser
		opts.Verbose = s.app.Verbose

		text, err = fetch.JobPosting(r.Context(), req.URL, opts)
		if err != nil {
			s.handleError(w, err)
			return
		}
	}
	text = ingestion.CleanText(text)

	tokens, err := s.counter.Count(text)
	if err != nil {
		s.handleError(w, err)
		return
	}

	sess.JobDescText = text
	sess.JobDescTokens = tokens
	sess.ResetGeneration()

	s.jsonResponse(w, http.StatusOK, types.JobDescriptionResponse{
		Source:       source,
		TokenCount:   tokens,
		TokenDisplay: ingestion.FormatTokenCount(tokens),
		Preview:      ingestion.TruncateForDisplay(text, previewLength),
	})
}

// handleGenerate runs the admission check and produces a cover letter, served
// from the session cache when the same inputs were generated before.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if s.generator == nil {
		s.handleError(w, &ErrMissingCredential{})
		return
	}
	if sess.ResumeText == "" {
		s.handleError(w, &ErrInputMissing{What: "resume"})
		return
	}
	if sess.JobDescText == "" {
		s.handleError(w, &ErrInputMissing{What: "job description"})
		return
	}

	// The body is optional.
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.handleError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if req.ForceRegenerate {
		sess.Cache.Clear()
	}

	res, err := s.guard.Validate(sess.ResumeText, sess.JobDescText)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !res.OK {
		var budgetErr *budget.ExceededError
		errors.As(res.Err(), &budgetErr)
		s.jsonResponse(w, http.StatusRequestEntityTooLarge, types.BudgetErrorResponse{
			Error:         msgBudgetExceeded,
			Part:          string(budgetErr.Part),
			Limit:         budgetErr.Limit,
			ResumeTokens:  res.ResumeTokens,
			JobDescTokens: res.JobDescTokens,
		})
		return
	}
	sess.ResumeTokens = res.ResumeTokens
	sess.JobDescTokens = res.JobDescTokens

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	mock := false
	letter, cached, err := sess.Cache.GetOrGenerate(ctx, sess.ResumeText, sess.JobDescText, s.generator.Generate)
	if err != nil {
		if s.app.MockFallback && generation.Fallback(err) {
			log.Printf("[generate] service failure, serving mock letter: %v", err)
			letter, mock = generation.MockLetter, true
		} else {
			s.handleError(w, err)
			return
		}
	}

	sess.Letter = letter
	sess.Fields = placeholder.BuildFields(letter, time.Now())
	sess.Values = nil
	sess.PersonalizedLetter = ""

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Letter:        letter,
		Cached:        cached,
		Mock:          mock,
		Fields:        sess.Fields,
		ResumeTokens:  res.ResumeTokens,
		JobDescTokens: res.JobDescTokens,
	})
}

// handlePersonalize fills the letter's placeholders with the submitted values
// after checking that none of the required fields is empty.
func (s *Server) handlePersonalize(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if sess.Letter == "" {
		s.handleError(w, &ErrInputMissing{What: "generated letter"})
		return
	}

	var req types.PersonalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	ok, missing := placeholder.ValidateRequired(req.Values, sess.RequiredLabels())
	if !ok {
		s.jsonResponse(w, http.StatusBadRequest, types.MissingFieldsResponse{
			Error:         msgMissingFields,
			MissingFields: missing,
		})
		return
	}

	sess.Values = req.Values
	sess.PersonalizedLetter = placeholder.Substitute(sess.Letter, req.Values)

	s.jsonResponse(w, http.StatusOK, types.PersonalizeResponse{
		Letter: sess.PersonalizedLetter,
	})
}

// handleExportCSV downloads the personalized letter and field values as CSV.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !sess.Personalized() {
		s.handleError(w, &ErrInputMissing{What: "personalized letter"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))

	if err := export.WriteCSV(w, fieldValues(sess), sess.PersonalizedLetter); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// handleExportDocument downloads the personalized letter as a markdown
// document.
func (s *Server) handleExportDocument(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !sess.Personalized() {
		s.handleError(w, &ErrInputMissing{What: "personalized letter"})
		return
	}

	w.Header().Set("Content-Type", "text/markdown")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("md")))

	if err := export.WriteDocument(w, "Personalized Cover Letter", fieldValues(sess), sess.PersonalizedLetter); err != nil {
		log.Printf("Error writing document export: %v", err)
	}
}

// handleCacheClear clears the session's letter cache.
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	sess.Cache.Clear()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// fieldValues pairs the session's fields with their submitted values,
// preserving field order.
func fieldValues(sess *session.Session) []export.FieldValue {
	values := make([]export.FieldValue, 0, len(sess.Fields))
	for _, f := range sess.Fields {
		values = append(values, export.FieldValue{Label: f.Label, Value: sess.Values[f.Label]})
	}
	return values
}

// exportFilename builds a timestamped, sanitized download name.
func exportFilename(ext string) string {
	name := fmt.Sprintf("cover_letter_%s.%s", time.Now().Format("20060102_150405"), ext)
	return ingestion.SanitizeFilename(name)
}

// handleError maps an error to its HTTP status and user-facing message.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var budgetErr *budget.ExceededError
	if errors.As(err, &budgetErr) {
		s.jsonResponse(w, status, types.BudgetErrorResponse{
			Error: msgBudgetExceeded,
			Part:  string(budgetErr.Part),
			Limit: budgetErr.Limit,
		})
		return
	}

	s.errorResponse(w, status, userMessage(err))
}

// userMessage picks the catalog message for an error, falling back to the
// error text.
func userMessage(err error) string {
	var (
		extractionErr *ingestion.ExtractionError
		authErr       *generation.AuthError
		rateErr       *generation.RateLimitError
		svcErr        *generation.ServiceError
		emptyErr      *generation.EmptyResponseError
	)

	switch {
	case errors.As(err, &extractionErr):
		return msgExtractionFailed
	case errors.As(err, &authErr):
		return msgAuthFailed
	case errors.As(err, &rateErr):
		return msgRateLimited
	case errors.As(err, &svcErr):
		return msgServiceFailed
	case errors.As(err, &emptyErr):
		return msgEmptyResponse
	}

	switch err.(type) {
	case *ErrSessionNotFound:
		return msgSessionNotFound
	case *ErrInvalidFileType:
		return msgInvalidFileType
	case *ErrMissingCredential:
		return msgMissingCredential
	default:
		return err.Error()
	}
}
