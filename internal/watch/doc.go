// Package watch regenerates the manifest when asset directories change.
// It watches the category directories (and each reference project, one level
// deep) with fsnotify, debounces bursts of events, and calls a rebuild
// function at most once per quiet period.
package watch
