package generation

// Field types recognized by the generation endpoint. Anything else is passed
// through with the raw prompt and a generic fallback.
const (
	FieldProfileSummary     = "profile summary"
	FieldJobDescription     = "job description"
	FieldProjectDescription = "project description"
)

// BuildPrompt wraps the raw prompt with category-specific framing for the
// external model. Unrecognized field types use the prompt unmodified.
func BuildPrompt(prompt, fieldType string) string {
	switch fieldType {
	case FieldProfileSummary:
		return "Write a professional profile summary for a resume. " + prompt +
			". Keep it concise, professional, and highlight key strengths and experience."
	case FieldJobDescription:
		return "Write professional job description bullet points for a resume. " + prompt +
			". Format as bullet points highlighting achievements and responsibilities."
	case FieldProjectDescription:
		return "Write a professional project description for a resume. " + prompt +
			". Focus on technologies used, challenges solved, and impact achieved."
	default:
		return prompt
	}
}

// MockContent is the deterministic fallback used whenever the external call
// fails or no provider is configured. The endpoint always returns content.
func MockContent(prompt, fieldType string) string {
	switch fieldType {
	case FieldProfileSummary:
		return "Mock Profile Summary: " + prompt + ". This is a generated summary."
	case FieldJobDescription:
		return "Mock Job Description: " + prompt + ". This is a generated job description."
	case FieldProjectDescription:
		return "Mock Project Description: " + prompt + ". This is a generated project description."
	default:
		return "Mock Content: " + prompt
	}
}
