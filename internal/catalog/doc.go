// Package catalog holds the static lookup tables used to describe assets in
// the manifest: the curated agent descriptions, the ordered doc category rules,
// and the helpers that derive display names from filenames. The tables are
// plain data so they can be extended without touching the scanning code.
package catalog
