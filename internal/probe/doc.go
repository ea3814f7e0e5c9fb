// Package probe provides ffprobe-based audio inspection and typed result
// structures. One JSON call per file yields the container duration and the
// audio streams; it backs the optional pre-encode validation and the
// duration figures in run summaries.
package probe
