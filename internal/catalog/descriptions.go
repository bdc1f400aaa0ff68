package catalog

// AgentDescriptions maps an agent filename (with extension) to its curated
// description. Agents missing from the table fall back to Humanize.
var AgentDescriptions = map[string]string{
	"system-architect.md":   "Design and architect applications",
	"docs-researcher.md":    "Research documentation and best practices",
	"code-reviewer.md":      "Review code for quality and best practices",
	"test-engineer.md":      "Write and maintain tests",
	"frontend-developer.md": "Build user interfaces and frontend features",
	"backend-developer.md":  "Build APIs and server-side logic",
	"devops-engineer.md":    "Manage deployment and infrastructure",
	"security-auditor.md":   "Audit code for security vulnerabilities",
}

// DescribeAgent returns the curated description for filename, or the
// humanized name when the filename is not in AgentDescriptions.
func DescribeAgent(filename string) string {
	if d, ok := AgentDescriptions[filename]; ok {
		return d
	}
	return Humanize(StripExtension(filename))
}
