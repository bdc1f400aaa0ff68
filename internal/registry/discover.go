package registry

import (
	"log"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agents-manifest/internal/catalog"
	"github.com/agentx-labs/agents-manifest/internal/manifest"
)

// ScanAgents returns one FileInfo per visible entry in the agents source.
// Descriptions come from the curated table, falling back to the humanized name.
func ScanAgents(src Source, logger *log.Logger) []manifest.FileInfo {
	return scanFiles(src, loggerOrDiscard(logger), func(fi *manifest.FileInfo) {
		fi.Description = catalog.DescribeAgent(fi.Filename)
	})
}

// ScanDocs returns one FileInfo per visible entry in the docs source, each
// classified into a category. The curated agent table is not consulted.
func ScanDocs(src Source, logger *log.Logger) []manifest.FileInfo {
	return scanFiles(src, loggerOrDiscard(logger), func(fi *manifest.FileInfo) {
		fi.Description = catalog.Humanize(fi.Name)
		fi.Category = catalog.ClassifyDoc(fi.Filename)
	})
}

// ScanReference returns one ReferenceProject per visible directory in the
// reference source. Each project lists its immediate visible children only.
// Non-directory entries are skipped.
func ScanReference(src Source, logger *log.Logger) []manifest.ReferenceProject {
	logger = loggerOrDiscard(logger)

	result := []manifest.ReferenceProject{}
	for _, entry := range TryListDir(src.BasePath) {
		path := filepath.Join(src.BasePath, entry.Name())

		// Stat follows symlinks, so a linked project directory counts.
		info, err := os.Stat(path)
		if err != nil {
			logger.Printf("skipping %s: %v", path, err)
			continue
		}
		if !info.IsDir() {
			logger.Printf("skipping %s: not a directory", path)
			continue
		}

		name := filepath.Base(path)
		result = append(result, manifest.ReferenceProject{
			Name:        name,
			Files:       TryListNames(path),
			Description: catalog.Humanize(name),
		})
	}
	return result
}

// scanFiles stats each visible entry of src and lets describe fill in the
// description (and category, for docs). Entries that cannot be stat'ed are
// skipped so one bad file does not empty the whole category.
func scanFiles(src Source, logger *log.Logger, describe func(*manifest.FileInfo)) []manifest.FileInfo {
	result := []manifest.FileInfo{}
	for _, entry := range TryListDir(src.BasePath) {
		path := filepath.Join(src.BasePath, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			logger.Printf("skipping %s: %v", path, err)
			continue
		}

		fi := manifest.FileInfo{
			Name:     catalog.StripExtension(entry.Name()),
			Filename: entry.Name(),
			Size:     info.Size(),
		}
		describe(&fi)
		result = append(result, fi)
	}
	return result
}
