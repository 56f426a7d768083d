// Package fastx reads and writes FASTA and FASTQ records. It never imports
// cli or app packages; keep it domain-only.
//
// The scanner sniffs the format from the first record marker and streams
// records through an emit callback, so callers never hold a whole file in
// memory unless they choose to.
package fastx
