// Package importer runs a GEDCOM file through parsing, duplicate detection and
// commit into the family tree store.
//
// An import happens in two steps. Preview reads and parses the file, then
// scores every imported individual against the persons already stored. The
// caller inspects the probable duplicates and decides, per individual,
// whether to create it anyway or skip it. Commit applies those decisions and
// writes one import batch under an exclusive file lock. Skipped individuals
// are linked to the existing person they matched so family links survive.
package importer
