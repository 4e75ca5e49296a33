// Package counter turns show arguments into filler and canon episode counts.
//
// An argument is a show name optionally followed by ":lower" or
// ":lower:upper" (inclusive, either side may be empty). For each argument the
// Processor fetches the show page, extracts the filler and canon episode
// lists, clips them to the requested bound, and counts them. Run processes a
// batch sequentially and isolates failures: an unknown show, a malformed
// argument, or a malformed episode list is reported for that argument and the
// batch moves on.
package counter
