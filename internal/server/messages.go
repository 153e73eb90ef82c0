package server

// User-facing message strings, kept in one place so the API surface stays
// consistent.
const (
	msgSessionNotFound   = "Session not found or expired. Create a new session first."
	msgNoResumeFile      = "No resume file was provided."
	msgInvalidFileType   = "Unsupported file type. Please upload a PDF file."
	msgExtractionFailed  = "Could not extract text from the PDF. The file may be scanned or corrupted."
	msgResumeRequired    = "Upload a resume before generating a cover letter."
	msgJobDescRequired   = "Provide a job description before generating a cover letter."
	msgLetterRequired    = "Generate a cover letter before personalizing it."
	msgExportRequired    = "Personalize the cover letter before exporting it."
	msgMissingCredential = "Cover letter generation is not configured. Set GEMINI_API_KEY and restart."
	msgAuthFailed        = "The generation service rejected the configured credential."
	msgRateLimited       = "The generation service is rate limiting requests. Try again in a moment."
	msgServiceFailed     = "The generation service failed. Try again later."
	msgEmptyResponse     = "The generation service returned an empty response. Try again."
	msgBudgetExceeded    = "The input is too long for generation."
	msgMissingFields     = "Some required fields are empty."
)
