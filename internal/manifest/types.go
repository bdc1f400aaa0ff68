package manifest

// SchemaVersion is the manifest format version written by the builder.
const SchemaVersion = "1.0.0"

// TimeFormat is the layout of the generated timestamp (UTC, millisecond precision).
const TimeFormat = "2006-01-02T15:04:05.000Z"

// AssetManifest is the root document written to manifest.json.
type AssetManifest struct {
	Version   string             `json:"version"`
	Generated string             `json:"generated"`
	Agents    []FileInfo         `json:"agents"`
	Docs      []FileInfo         `json:"docs"`
	Reference []ReferenceProject `json:"reference"`
}

// FileInfo describes a single agent or doc file. Category is only set for docs.
type FileInfo struct {
	Name        string `json:"name"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// ReferenceProject describes a directory under reference_code.
type ReferenceProject struct {
	Name        string   `json:"name"`
	Files       []string `json:"files"`
	Description string   `json:"description"`
}

// Collection names, as used in the JSON document.
const (
	CollectionAgents    = "agents"
	CollectionDocs      = "docs"
	CollectionReference = "reference"
)

// Collections lists the collection names in document order.
var Collections = []string{CollectionAgents, CollectionDocs, CollectionReference}

// Counts returns the number of entries in each collection.
func (m *AssetManifest) Counts() map[string]int {
	return map[string]int{
		CollectionAgents:    len(m.Agents),
		CollectionDocs:      len(m.Docs),
		CollectionReference: len(m.Reference),
	}
}

// Normalize replaces nil collections with empty slices so they encode as []
// rather than null.
func (m *AssetManifest) Normalize() {
	if m.Agents == nil {
		m.Agents = []FileInfo{}
	}
	if m.Docs == nil {
		m.Docs = []FileInfo{}
	}
	if m.Reference == nil {
		m.Reference = []ReferenceProject{}
	}
	for i := range m.Reference {
		if m.Reference[i].Files == nil {
			m.Reference[i].Files = []string{}
		}
	}
}
