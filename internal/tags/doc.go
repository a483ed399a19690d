// Package tags extracts title/artist/album metadata from downloaded audio
// files.
//
// Absent or unreadable tags are an expected, common case (download tools
// regularly emit untagged files), so reads never fail: a file the reader
// cannot make sense of simply yields empty tag fields and remains eligible
// for filename-based association.
package tags
