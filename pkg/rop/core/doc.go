// Package core contains worker plumbing: the locomotive loop that drives a
// single-consumer inbox, context-carried worker options, and channel helpers
// that never block past cancellation or worker shutdown.
package core
