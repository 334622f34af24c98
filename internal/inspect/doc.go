// Package inspect prints selected parts of one font document.
//
// Five blocks are reported in a fixed order: info, common, pages,
// characters, kerning pairs. For each block the caller may ask for the
// whole block, for individual records by ID, or for both. A dump is printed
// first, then the requested records, even when that repeats an entry. IDs
// missing from the document are reported and skipped; they never fail the
// command.
package inspect
