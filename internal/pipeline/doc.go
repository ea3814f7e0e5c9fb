// Package pipeline runs the two batch transforms over resolved inputs.
//
// Merge is a fail-fast linear fold: every input is decoded in the chosen
// order and appended to one segment, which is exported to the fixed merged
// output. The first decode failure aborts the run and nothing is written.
//
// Convert isolates failures per item: each input is encoded over the
// background image to <output>/<stem>.mp4, failures are recorded with a
// short reason, and the batch continues. An optional bounded worker pool
// runs items concurrently; results are always reported in input order.
//
// Analyze probes inputs and prints a codec/bitrate/duration report with
// bitrate outlier flags; it writes nothing.
//
// The encoder, audio codec and prober are interfaces so tests can drive
// both pipelines without ffmpeg.
package pipeline
