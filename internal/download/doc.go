// Package download wraps the external audio download tool behind a narrow
// collaborator interface.
//
// The core pipeline never downloads audio itself: it asks a [Service] to
// drop files for the requested tracks into a playlist directory, then
// discovers whatever actually arrived. The default implementation shells
// out to spotdl; anything honoring the same contract (including the test
// doubles in internal/testing) can stand in.
package download
