// Package renderlog extracts structured facts from 3D render-tool session
// logs.
//
// A log is read fully into memory and scanned once. Four independent
// matchers classify each line:
//
//   - "render done in <tail>" lines set the total render time (last wins)
//   - "HH:MM:SS  <n>MB  |" fragments feed the memory timeline (first wins
//     per elapsed-time label)
//   - lines containing WARNING or ERROR are collected verbatim from the
//     marker onward, in file order
//
// Parse is total and deterministic: malformed or unrelated lines simply
// match nothing, and equal inputs always produce structurally equal
// reports. The only failure mode in this package is *FileAccessError from
// ReadLines when the path cannot be opened.
package renderlog
