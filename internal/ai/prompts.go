package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	RewriteBullet string
	AnalyzeGaps   string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	RewriteBullet string
	AnalyzeGaps   string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	RewriteBullet: `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills, metrics, or experiences
- Every rewritten bullet must stay truthful to the original accomplishment
- Prefer strong action verbs, concrete outcomes, and quantification that the original already implies
- Keep each bullet to a single concise sentence

Your expertise includes:
- Resume bullet optimization
- ATS (Applicant Tracking System) keyword alignment
- Professional accomplishment phrasing`,

	AnalyzeGaps: `You are an expert technical recruiter and career analyst. Your role is to:

- Compare a candidate's resume against a job description
- Identify concrete experience gaps the candidate should address
- Stay factual: only report gaps supported by the provided documents
- Keep each gap short and specific

You never speculate beyond what the documents state.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	RewriteBullet: `Rewrite the following resume bullet to be stronger and more impactful.

**Rules:**
- Start with a strong action verb
- Keep it truthful to the original accomplishment; do not invent metrics
- Naturally incorporate these keywords if they fit the accomplishment: %s
- Keep it to one sentence
- Return ONLY the rewritten bullet text, with no quotes, markers, or preamble

**Original bullet:**
-----
%s
-----

**Job description for context:**
-----
%s
-----`,

	AnalyzeGaps: `Compare the resume below against the job description and identify the candidate's experience gaps.

**Tasks:**

1. **Gaps**: List the specific skills, technologies, or experience areas the job requires that the resume does not demonstrate. Keep each gap to a short phrase.

2. **Summary**: One or two sentences summarizing how the candidate's background aligns overall.

Return a JSON object with a "gaps" array of strings and a "summary" string.

**Resume:**
-----
%s
-----

**Job Description:**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
