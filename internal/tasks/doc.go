// Package tasks runs multi-video lookups with real-time progress reporting.
//
// # Batch Analysis
//
// [Analyzer.Analyze] takes raw user inputs (watch URLs, short links, embed URLs or bare IDs):
//
//  1. Extracts the video ID from each input
//  2. Fetches each video in sequence through a [VideoFetcher]
//  3. Summarizes the successful lookups (total views, total runtime, mean like rate)
//
// A failing input never aborts the batch; its error is kept on its [InputResult].
//
// # Progress Reporting
//
// Progress is sent over an optional channel as [ProgressUpdate] values.
// Updates use select with default so a slow reader never blocks the batch.
package tasks
