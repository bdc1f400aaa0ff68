// Package registry discovers installable assets on disk. It lists the agent,
// doc and reference-code source directories and turns each visible entry into
// manifest metadata. Listing is best effort: a missing or unreadable directory
// contributes nothing rather than failing the scan.
package registry
