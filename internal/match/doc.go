// Package match pairs expected playlist tracks with downloaded files and
// classifies each pairing.
//
// Association and classification are separate steps. [Associate] applies the
// filename/tag convention the download tool follows (with an optional
// similarity fallback) to decide which file belongs to which track.
// [Classify] then compares expected metadata against the file's embedded
// tags and produces exactly one [models.MatchResult] per expected track:
//
//   - Matched: tags agree after normalization, or the file carries no tag to
//     disagree with
//   - Corrected: a present tag differs, and the file's metadata wins because
//     downstream players match against file tags, not the source export
//   - Missing: no file was produced for the track
//
// Classification is pure and deterministic; it never errors and never
// retries.
package match
