package constants

// SkillVocabulary is the fixed keyword list scanned during key-info extraction.
// Matching is case-insensitive on word boundaries over the cleaned text; the
// canonical (lowercase) form is what gets reported.
var SkillVocabulary = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"go",
	"react",
	"node.js",
	"sql",
	"aws",
	"docker",
	"kubernetes",
	"git",
	"linux",
	"machine learning",
	"data analysis",
	"project management",
	"leadership",
	"communication",
	"teamwork",
}
