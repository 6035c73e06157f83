// Package loader reads the two whitespace-separated input files of the
// planner.
//
// Destinations (one per line):
//
//	<id> <raw_name> <price>
//	A Tanah_Lot 60000
//
// Underscores in raw_name become spaces. A later line for the same id
// overwrites the earlier one.
//
// Legs (one per line):
//
//	<from> <to> <cost>
//	Start W11 30
//
// Endpoints are created on first mention. A repeated from/to pair overwrites
// the earlier cost.
//
// Blank lines and lines starting with '#' are skipped. Any other line that
// does not have exactly three fields with an integer last field is rejected
// with ErrMalformedLine, wrapped with the file name and line number.
package loader
