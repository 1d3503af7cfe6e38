// Package vcs holds the table of supported version control systems.
//
// Each Variant owns a fixed list of case-insensitive aliases. Decode maps a
// user supplied identifier onto a Variant and rejects anything that is not an
// exact alias:
//
//	v, err := vcs.Decode("Subversion") // vcs.SVN
//	_, err = vcs.Decode("cvs")         // wraps domain.ErrUnknownVCS
//
// Detect inspects a working copy on disk and reports which Variant manages it.
package vcs
