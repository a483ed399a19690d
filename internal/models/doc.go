// Package models defines the domain entities for playlist reconciliation.
//
// The package contains two categories of types:
//
// 1. Pipeline values: immutable data flowing through the reconciliation stages
//   - [ExpectedTrack] : One row of the playlist export, in source order
//   - [DownloadedFile] : Tag metadata read from a downloaded audio file
//   - [Pairing] : An expected track associated with a downloaded file (or none)
//   - [MatchResult] : The classified outcome of a pairing
//   - [Summary] : Aggregate matched/corrected/missing counts
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [Run] : One pipeline execution with its summary counts
//   - [Correction] : Audit rows for tracks whose metadata was overridden
//
// Persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
