package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/agentx-labs/agents-manifest/internal/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// execute runs the command tree with args and returns stdout and stderr.
// Flag and viper state is reset first since both are package-level.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "assets/agents/system-architect.md", "# Architect\n")
	writeFile(t, root, "assets/docs/bun-react-setup.md", "# Bun\n")
	writeFile(t, root, "assets/docs/misc-notes.md", "notes\n")
	writeFile(t, root, "assets/reference_code/demo-api/index.ts", "export {}\n")
	writeFile(t, root, "assets/reference_code/README.md", "loose file\n")
	return root
}

func TestRoot_NoArgsGenerates(t *testing.T) {
	root := setupRoot(t)

	stdout, _, err := execute(t, "--root", root)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	path := filepath.Join(root, "manifest.json")
	m, err := manifest.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(m.Agents) != 1 || len(m.Docs) != 2 || len(m.Reference) != 1 {
		t.Errorf("counts = %v, want agents 1, docs 2, reference 1", m.Counts())
	}

	for _, want := range []string{"Generated " + path, "Agents:    1", "Docs:      2", "Reference: 1"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	if _, _, err := execute(t, "--root", t.TempDir(), "extra"); err == nil {
		t.Error("expected error for unexpected argument")
	}
}

func TestGenerate_EmptyRoot(t *testing.T) {
	root := t.TempDir()

	if _, _, err := execute(t, "generate", "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"agents": []`, `"docs": []`, `"reference": []`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("manifest missing %s:\n%s", want, data)
		}
	}
}

func TestGenerate_OutputFlag(t *testing.T) {
	root := setupRoot(t)
	if err := os.Mkdir(filepath.Join(root, "dist"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "generate", "--root", root, "--output", "dist/index.json"); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "dist", "index.json")); err != nil {
		t.Errorf("expected manifest at dist/index.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "manifest.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("manifest.json should not be written, stat err = %v", err)
	}
}

func TestGenerate_Verbose(t *testing.T) {
	root := setupRoot(t)

	_, stderr, err := execute(t, "generate", "--root", root, "--verbose")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !strings.Contains(stderr, "README.md: not a directory") {
		t.Errorf("stderr = %q, want skipped README.md reported", stderr)
	}

	_, stderr, err = execute(t, "generate", "--root", root)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr without --verbose = %q, want empty", stderr)
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "agents/solo.md", "x")
	writeFile(t, root, ".agents-manifest.yaml", "agents_dir: agents\noutput: out.json\n")

	if _, _, err := execute(t, "generate", "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	m, err := manifest.ParseFile(filepath.Join(root, "out.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(m.Agents) != 1 || m.Agents[0].Filename != "solo.md" {
		t.Errorf("Agents = %+v, want [solo.md]", m.Agents)
	}
}

func TestGenerate_EnvOverridesDefault(t *testing.T) {
	root := setupRoot(t)
	t.Setenv("AGENTS_MANIFEST_OUTPUT", "from-env.json")

	if _, _, err := execute(t, "generate", "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "from-env.json")); err != nil {
		t.Errorf("expected manifest at from-env.json: %v", err)
	}
}

func TestCheck(t *testing.T) {
	root := setupRoot(t)

	_, _, err := execute(t, "check", "--root", root)
	if !errors.Is(err, builder.ErrStale) {
		t.Fatalf("check before generate = %v, want ErrStale", err)
	}

	if _, _, err := execute(t, "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	stdout, _, err := execute(t, "check", "--root", root)
	if err != nil {
		t.Fatalf("check after generate = %v, want nil", err)
	}
	if !strings.Contains(stdout, "up to date") {
		t.Errorf("stdout = %q, want up to date message", stdout)
	}

	writeFile(t, root, "assets/agents/code-reviewer.md", "# Reviewer\n")
	_, _, err = execute(t, "check", "--root", root)
	if !errors.Is(err, builder.ErrStale) {
		t.Errorf("check after adding agent = %v, want ErrStale", err)
	}
}

func TestValidate(t *testing.T) {
	root := setupRoot(t)
	if _, _, err := execute(t, "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	stdout, _, err := execute(t, "validate", "--root", root)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if !strings.Contains(stdout, "is valid") {
		t.Errorf("stdout = %q, want valid message", stdout)
	}

	bad := filepath.Join(root, "bad.json")
	writeFile(t, root, "bad.json", `{"version":"1.0.0","generated":"2026-10-19T08:30:00.000Z","agents":[],"docs":[{"name":"x","filename":"x.md","size":1,"description":"x","category":"Misc"}],"reference":[]}`)

	_, stderr, err := execute(t, "validate", "--root", root, bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(stderr, "/docs/0") {
		t.Errorf("stderr = %q, want issue under /docs/0", stderr)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	if _, _, err := execute(t, "validate", "--root", t.TempDir()); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestList(t *testing.T) {
	root := setupRoot(t)
	if _, _, err := execute(t, "--root", root); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	stdout, _, err := execute(t, "list", "--root", root)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{"COLLECTION", "system-architect", "Bun", "demo-api/", "4 assets"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = execute(t, "list", "--root", root, "--category", "docs", "--json")
	if err != nil {
		t.Fatalf("list --json error: %v", err)
	}
	var entries []listEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("unmarshal list output: %v\n%s", err, stdout)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Collection != manifest.CollectionDocs {
			t.Errorf("entry collection = %q, want docs", e.Collection)
		}
	}
}

func TestList_UnknownCategory(t *testing.T) {
	_, _, err := execute(t, "list", "--root", t.TempDir(), "--category", "skills")
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Errorf("err = %v, want unknown category", err)
	}
}

func TestListEntries(t *testing.T) {
	m := &manifest.AssetManifest{
		Agents: []manifest.FileInfo{{Name: "a", Filename: "a.md", Size: 3, Description: "A"}},
		Docs:   []manifest.FileInfo{{Name: "d", Filename: "d.md", Size: 5, Description: "D", Category: "Bun"}},
		Reference: []manifest.ReferenceProject{
			{Name: "proj", Files: []string{"x", "y"}, Description: "proj reference implementation"},
		},
	}

	tests := []struct {
		collection string
		want       []string
	}{
		{"", []string{"a", "d", "proj"}},
		{manifest.CollectionAgents, []string{"a"}},
		{manifest.CollectionDocs, []string{"d"}},
		{manifest.CollectionReference, []string{"proj"}},
	}

	for _, tt := range tests {
		t.Run("collection="+tt.collection, func(t *testing.T) {
			entries := listEntries(m, tt.collection)
			if len(entries) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(entries), len(tt.want))
			}
			for i, e := range entries {
				if e.Name != tt.want[i] {
					t.Errorf("entries[%d].Name = %q, want %q", i, e.Name, tt.want[i])
				}
			}
		})
	}

	ref := listEntries(m, manifest.CollectionReference)[0]
	if ref.Size != 2 || ref.Path != "proj/" {
		t.Errorf("reference entry = %+v, want size 2 path proj/", ref)
	}
}

func TestConfigCommands(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := execute(t, "config", "path", "--root", root)
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	wantPath := filepath.Join(root, ".agents-manifest.yaml")
	if strings.TrimSpace(stdout) != wantPath {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(stdout), wantPath)
	}

	if _, _, err := execute(t, "config", "set", "docs_dir", "documentation", "--root", root); err != nil {
		t.Fatalf("config set error: %v", err)
	}

	stdout, _, err = execute(t, "config", "get", "docs_dir", "--root", root)
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if got := strings.TrimSpace(stdout); got != "documentation" {
		t.Errorf("config get docs_dir = %q, want %q", got, "documentation")
	}

	if _, _, err := execute(t, "config", "set", "bogus", "x", "--root", root); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-10-19"

	stdout, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(stdout) != "1.2.3" {
		t.Errorf("version --short = %q, want %q", stdout, "1.2.3")
	}

	stdout, _, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json error: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info["commit"] != "abc123" || info["manifest"] != manifest.SchemaVersion {
		t.Errorf("version info = %v", info)
	}

	stdout, _, err = execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(stdout, "agents-manifest version 1.2.3") {
		t.Errorf("version = %q", stdout)
	}
}
