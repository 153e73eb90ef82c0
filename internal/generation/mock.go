package generation

// MockLetter is the letter served when mock fallback is enabled and the
// completion service fails. It is clearly marked and keeps the bracketed
// placeholder convention so the personalization form still works.
const MockLetter = `Dear [Hiring Manager Name],

I am writing to express my strong interest in the position you have available. With my background and experience, I believe I would be an excellent fit for your team.

Based on the job description you provided, I understand you are looking for a candidate who can contribute effectively to your organization. My experience aligns well with your requirements, and I am excited about the opportunity to bring my skills and enthusiasm to your company.

I am particularly drawn to this role because it offers the chance to work on challenging projects while contributing to meaningful outcomes. I am confident that my background, combined with my strong work ethic and dedication to excellence, would make me a valuable addition to your team.

Thank you for considering my application. I look forward to the opportunity to discuss how my skills and experience can benefit your organization.

Sincerely,
[Your Name]

---
This is a mock cover letter generated for demonstration purposes. For a personalized cover letter, please ensure your API key is properly configured.`

// Fallback reports whether err is a failure kind the mock letter may stand in
// for. Credential problems are never masked: the user has to fix those.
func Fallback(err error) bool {
	switch err.(type) {
	case *RateLimitError, *ServiceError, *EmptyResponseError:
		return true
	default:
		return false
	}
}
