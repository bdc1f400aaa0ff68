package catalog

import "strings"

// strippedExtensions are removed from the end of a filename to form its name.
// Only one extension is removed.
var strippedExtensions = []string{".md", ".ts", ".js", ".json"}

// StripExtension removes a single trailing .md, .ts, .js or .json extension.
// Other extensions are kept, so "notes.txt" stays "notes.txt".
func StripExtension(filename string) string {
	for _, ext := range strippedExtensions {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext)
		}
	}
	return filename
}

var humanizer = strings.NewReplacer("-", " ", "_", " ")

// Humanize replaces every '-' and '_' in name with a space,
// e.g., "demo-project" → "demo project".
func Humanize(name string) string {
	return humanizer.Replace(name)
}
