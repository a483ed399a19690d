// Package repositories implements SQLite persistence for run history.
//
// Key Implementations:
//   - [RunRepository] : One row per reconciliation run with summary counts, soft-deleted via deleted_at
//   - [CorrectionRepository] : Audit rows recording expected vs effective metadata for corrected tracks
//   - [RunRecorderAdapter] : tasks.RunRecorder implementation persisting a completed run in one call
//
// Sequence numbers provide stable, human-readable ordering (e.g., run #42) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
