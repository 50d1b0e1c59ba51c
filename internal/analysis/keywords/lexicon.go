package keywords

import "resumescore/internal/types"

// Lexicon holds the static category reference sets. Built once at startup
// and treated as read-only afterwards.
type Lexicon struct {
	TechnicalSkills []string
	SoftSkills      []string
	Tools           []string
	Certifications  []string
}

// DefaultLexicon returns the built-in category sets
func DefaultLexicon() Lexicon {
	return Lexicon{
		TechnicalSkills: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
			"go", "rust", "php", "swift", "kotlin", "scala", "r", "matlab",
			"sql", "nosql", "html", "css", "react", "angular", "vue", "node",
			"django", "flask", "spring", "express", "tensorflow", "pytorch",
			"keras", "scikit-learn", "pandas", "numpy", "machine learning",
			"deep learning", "ai", "artificial intelligence", "data science",
			"nlp", "computer vision", "neural networks",
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "collaboration",
			"problem-solving", "critical thinking", "analytical", "creative",
			"adaptable", "flexible", "time management", "organizational",
			"detail-oriented", "self-motivated", "initiative", "presentation",
			"interpersonal", "mentoring", "coaching",
		},
		Tools: []string{
			"git", "github", "gitlab", "bitbucket", "jira", "confluence",
			"slack", "docker", "kubernetes", "jenkins", "circleci", "travis",
			"terraform", "ansible", "puppet", "chef", "aws", "azure", "gcp",
			"heroku", "vercel", "linux", "unix", "windows", "macos", "bash",
			"powershell", "vscode", "intellij", "eclipse", "pycharm",
			"jupyter",
		},
		Certifications: []string{
			"aws certified", "azure certified", "gcp certified", "pmp",
			"scrum master", "cissp", "comptia", "ceh", "cisa", "cism",
			"itil", "ccna", "ccnp", "certified kubernetes",
			"tableau certified", "cpa", "cfa", "six sigma",
		},
	}
}

// categoryOrder is the declared tagging priority for the reference sets
func (l Lexicon) categories() []struct {
	name  types.KeywordCategory
	terms []string
} {
	return []struct {
		name  types.KeywordCategory
		terms []string
	}{
		{types.CategoryTechnicalSkill, l.TechnicalSkills},
		{types.CategorySoftSkill, l.SoftSkills},
		{types.CategoryTool, l.Tools},
		{types.CategoryCertification, l.Certifications},
	}
}
