// Package builder produces the asset manifest. Build scans the agent, doc and
// reference-code directories under a source root and assembles an
// AssetManifest; Write serializes it; Run does both and prints a summary.
// The builder never consults the working directory or the environment:
// everything it reads comes from Options.
package builder
