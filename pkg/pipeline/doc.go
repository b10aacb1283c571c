// Package pipeline ranks the most frequent words of a document with one of
// three engines.
//
// The actor engine is the orchestrator of the Loader and Counter workers. It
// walks a linear state machine
//
//	Start -> AwaitInput -> AwaitStopWords -> AwaitCount -> Ranking -> Done
//
// and moves to Failed on the first failed or undelivered reply, without
// issuing any further request. The monolithic engine scans the input line by
// line in one pass. The iterators engine streams lines through lazy
// tokenize, filter and count stages.
package pipeline
