// Package batch splits large inputs into fixed-size batches and processes them
// sequentially or on a bounded errgroup.
//
// The batch command uses it to convert files of "value from to" lines. Each
// callback receives the offset of its batch so results can be written back in
// input order regardless of scheduling.
package batch
