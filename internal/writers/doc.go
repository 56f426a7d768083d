// Package writers turns parsed domain values into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV columns, JSON shape).
//   - Core packages stay domain-only; apps stay orchestration-only.
//   - Output destinations go through Open so '-' and files behave alike.
package writers
