// Package extract runs VCS command-line clients against a working copy and
// turns their output into named properties.
//
// Every backend is a fixed list of steps. A step is one client invocation and
// the line patterns that read its output, or a constant assignment for a value
// the VCS has no notion of (BitKeeper branches). Steps whose properties were
// not requested are skipped without spawning anything.
//
// Patterns are case insensitive and must match a whole output line. Each match
// writes the trimmed first capture group to the sink, so when several lines
// match the same pattern the last one wins.
package extract
