// Package report derives and renders user-facing summaries of a
// reconciliation run.
//
// Summaries are a pure function of the match results: counts always satisfy
// matched + corrected + missing == total. Rendering additionally lists every
// corrected entry (expected against effective metadata) so substitutions can
// be audited before the playlist is imported.
package report
