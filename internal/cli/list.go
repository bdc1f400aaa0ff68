package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/agentx-labs/agents-manifest/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list one collection (agents, docs, reference)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List the assets recorded in a manifest",
	Long: `Print the agents, docs and reference projects recorded in a manifest.

Defaults to the configured output path. Use --category to show a single
collection and --json for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listCategory != "" && !slices.Contains(manifest.Collections, listCategory) {
			return fmt.Errorf("unknown category %q (valid: %s)", listCategory, strings.Join(manifest.Collections, ", "))
		}

		path := buildOptions(cmd).OutputPath()
		if len(args) > 0 {
			path = args[0]
		}

		m, err := manifest.ParseFile(path)
		if err != nil {
			return err
		}

		if listJSON {
			return printListJSON(cmd.OutOrStdout(), m, listCategory)
		}
		printListTable(cmd.OutOrStdout(), m, listCategory)
		return nil
	},
}

type listEntry struct {
	Collection  string `json:"collection"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Category    string `json:"category,omitempty"`
	Size        int64  `json:"size"`
	Description string `json:"description"`
}

// listEntries flattens m into rows, keeping manifest order. Reference rows
// carry the project's file count in Size.
func listEntries(m *manifest.AssetManifest, collection string) []listEntry {
	entries := []listEntry{}
	want := func(c string) bool { return collection == "" || collection == c }

	if want(manifest.CollectionAgents) {
		for _, a := range m.Agents {
			entries = append(entries, listEntry{
				Collection:  manifest.CollectionAgents,
				Name:        a.Name,
				Path:        a.Filename,
				Size:        a.Size,
				Description: a.Description,
			})
		}
	}
	if want(manifest.CollectionDocs) {
		for _, d := range m.Docs {
			entries = append(entries, listEntry{
				Collection:  manifest.CollectionDocs,
				Name:        d.Name,
				Path:        d.Filename,
				Category:    d.Category,
				Size:        d.Size,
				Description: d.Description,
			})
		}
	}
	if want(manifest.CollectionReference) {
		for _, r := range m.Reference {
			entries = append(entries, listEntry{
				Collection:  manifest.CollectionReference,
				Name:        r.Name,
				Path:        r.Name + "/",
				Size:        int64(len(r.Files)),
				Description: r.Description,
			})
		}
	}
	return entries
}

func printListTable(out io.Writer, m *manifest.AssetManifest, collection string) {
	entries := listEntries(m, collection)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No assets in manifest.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tNAME\tPATH\tCATEGORY\tSIZE\tDESCRIPTION")
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", e.Collection, e.Name, e.Path, category, e.Size, e.Description)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d assets (manifest %s, generated %s)\n", len(entries), m.Version, m.Generated)
}

func printListJSON(out io.Writer, m *manifest.AssetManifest, collection string) error {
	data, err := json.MarshalIndent(listEntries(m, collection), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling list: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
