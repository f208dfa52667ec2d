// Package cli provides the `fastuuid` command-line tool.
//
// Usage
//
//	fastuuid gen -n 5                      # five hex128 ids
//	fastuuid gen -n 5 --format raw         # 48 hex chars of the 192-bit id
//	fastuuid gen --format uuid --byte-order big
//	fastuuid gen -n 100000 --audit         # record ids and fail on duplicates
//
//	fastuuid validate 11febf98-c108-4383-bb1e-739ffcd44341
//	fastuuid gen -n 10 | fastuuid validate --rfc
//
//	fastuuid audit stats
//	fastuuid audit runs
//
//	fastuuid bench -w 8 -n 1000000 --mode hex128
//
// # Configuration
//
// --config points at a JSON or YAML file. FASTUUID_* environment variables
// overlay the file, and explicit flags overlay both. Logs go to stderr so
// stdout carries only results.
package cli
