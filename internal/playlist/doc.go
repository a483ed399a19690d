// Package playlist serializes reconciled tracks into extended M3U files.
//
// Every non-missing result becomes a two-line entry: an #EXTINF comment
// carrying the display string (duration is unknown and written as -1) and
// the absolute path to the audio file. Missing tracks never appear; they are
// reported through the summary instead.
package playlist
