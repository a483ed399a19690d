// Package tasks orchestrates the playlist reconciliation pipeline with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] interface defines two operations:
//
//  1. [Engine.Process] : Convert a single playlist export into a local playlist
//     - Parses the exported CSV into expected tracks
//     - Downloads tracks via the configured downloader
//     - Reads embedded tags from the downloaded files
//     - Classifies each expected track as matched, corrected, or missing
//     - Writes an M3U playlist and records the run when a recorder is configured
//
//  2. [Engine.ProcessBatch] : Process multiple exports concurrently
//     - Worker pool with rate-limited playlist starts
//     - Per-playlist failure isolation, one bad export never aborts the rest
//     - Aggregated per-playlist results for reporting
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Implementation
//
// [PlaylistEngine] implements [Engine] with dependencies on:
//   - [download.Service] : Audio downloader (spotdl subprocess)
//   - [tags.Reader] : ID3 tag reader for downloaded files
//   - [RunRecorder] : Optional persistence layer (repositories.RunRecorderAdapter)
package tasks
