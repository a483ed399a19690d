// Package parser reads Exportify-style CSV playlist exports into ordered
// track sequences.
//
// The first row is treated as a header and matched against known column
// aliases, so exports from different tools (Exportify, soundporter-style
// dumps) parse without configuration. Only a title column is required;
// artist and album default to empty strings when their columns are absent.
// Rows without a title are skipped and counted, never fatal.
package parser
