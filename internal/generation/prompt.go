package generation

import "fmt"

// systemInstruction frames the model's role for every request.
const systemInstruction = "You are an expert cover letter writer who creates professional, personalized cover letters."

// promptTemplate embeds both inputs and fixed formatting instructions. The
// bracketed-placeholder instruction is load-bearing: the placeholder engine
// downstream depends on personal data being emitted as [Label] spans.
const promptTemplate = `You are an expert cover letter writer. Create a professional cover letter based on the following resume and job description.

RESUME:
%s

JOB DESCRIPTION:
%s

INSTRUCTIONS:
1. Write a compelling cover letter that highlights relevant skills and experiences from the resume
2. Address the specific requirements and responsibilities mentioned in the job description
3. Use a professional tone and structure
4. Include placeholders in square brackets [PLACEHOLDER_NAME] for personal information that the user will fill in later, such as:
   - [Your Name]
   - [Your Email]
   - [Your Phone]
   - [Your Address]
   - [Company Name]
   - [Hiring Manager Name]
   - [Date]
   - [Specific achievements or experiences]
5. Make the cover letter specific to the job and company
6. Keep it concise but impactful (around 300-400 words)
7. End with a strong call to action

FORMAT:
- Professional business letter format
- Include all necessary placeholders
- Make it ready for the user to personalize with their specific information

Generate the cover letter now:`

// BuildPrompt returns the deterministic generation prompt for an input pair.
// Identical inputs always produce an identical prompt, which keeps the cache
// fingerprint meaningful.
func BuildPrompt(resumeText, jobDesc string) string {
	return fmt.Sprintf(promptTemplate, resumeText, jobDesc)
}
