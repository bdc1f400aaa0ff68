package catalog

import "strings"

// Doc category labels.
const (
	CategoryClaudeCode = "Claude Code"
	CategoryBun        = "Bun"
	CategoryReact      = "React/Next.js"
	CategoryTypeScript = "TypeScript"
	CategoryTesting    = "Testing"
	CategoryAPI        = "API"
	CategoryUI         = "UI/Styling"
	CategoryDatabase   = "Database"
	CategoryGeneral    = "General"
)

// CategoryRule assigns Label to any filename containing one of Keywords.
type CategoryRule struct {
	Label    string
	Keywords []string
}

// Matches reports whether filename contains any of the rule's keywords.
// Matching is case-sensitive.
func (r CategoryRule) Matches(filename string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(filename, kw) {
			return true
		}
	}
	return false
}

// DocCategoryRules is evaluated in order and the first matching rule wins.
// The order is part of the manifest format: "bun-react-setup.md" is "Bun",
// and any filename containing "ts" (including "tests") is "TypeScript".
var DocCategoryRules = []CategoryRule{
	{Label: CategoryClaudeCode, Keywords: []string{"claude-code"}},
	{Label: CategoryBun, Keywords: []string{"bun"}},
	{Label: CategoryReact, Keywords: []string{"react", "next"}},
	{Label: CategoryTypeScript, Keywords: []string{"typescript", "ts"}},
	{Label: CategoryTesting, Keywords: []string{"test"}},
	{Label: CategoryAPI, Keywords: []string{"hono", "api"}},
	{Label: CategoryUI, Keywords: []string{"ui", "tailwind", "shadcn"}},
	{Label: CategoryDatabase, Keywords: []string{"orm", "drizzle", "database"}},
}

// ClassifyDoc returns the category of a doc file using DocCategoryRules,
// or CategoryGeneral when no rule matches.
func ClassifyDoc(filename string) string {
	return classify(DocCategoryRules, filename)
}

func classify(rules []CategoryRule, filename string) string {
	for _, r := range rules {
		if r.Matches(filename) {
			return r.Label
		}
	}
	return CategoryGeneral
}
