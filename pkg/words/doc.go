// Package words holds the counting semantics shared by every engine:
// Unicode word segmentation, the stop-word set, the frequency table and the
// top-N ranking.
package words
