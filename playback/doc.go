// Package playback schedules the animation of a finished search.
//
// A Timeline is built from the two immutable sequences a search produces,
// the visit order and the path, and never touches the live grid. Visit
// frames come first, one every VisitDelay; path frames follow, one every
// PathDelay, and only when the search reached the finish.
//
// Defaults mirror the classic visualizer pacing: 10ms per visited cell,
// 50ms per path cell.
//
// Play emits frames on schedule from the calling goroutine; cancel its
// context to stop early.
package playback
