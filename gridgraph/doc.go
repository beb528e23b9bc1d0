// Package gridgraph treats a rectangular board of cells as an unweighted
// graph and runs shortest-path searches whose visit order can be replayed.
//
// What:
//
//   - Grid owns every Cell: wall flags, the single start and finish cells and
//     the search-scoped fields (Distance, IsVisited, Previous).
//   - Neighbors resolves the orthogonal in-bounds cells of a position in a
//     fixed order: up, down, left, right. Walls are included.
//   - ShortestPath runs a uniform-weight Dijkstra from start and returns the
//     cells in the exact order they were finalized.
//   - ReconstructPath backtracks Previous links from a cell to the start.
//   - FromASCII / ASCII convert boards to and from text.
//
// Why:
//
//   - Pathfinding visualizers: the visit order drives the animation and the
//     path is drawn last.
//   - Puzzle and maze tooling: quick boards from text, deterministic replays.
//
// Complexity:
//
//   - ShortestPath with QueueLinear: O(V²·log V) time, O(V) memory. Every step
//     stable-sorts the remaining candidates, which fixes the tie order.
//   - ShortestPath with QueueHeap:   O(V·log V) time, O(V) memory.
//   - ReconstructPath:               O(path length).
//   - HopDistances:                  O(V) time and memory.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive.
//   - ErrOutOfBounds: a position outside the grid.
//   - ErrOverlappingEndpoints: start and finish on the same cell.
//   - ErrIllegalEdit: walling an endpoint, or moving an endpoint onto a wall
//     or onto the other endpoint. The grid is left untouched.
//   - ErrNoSearch: ReconstructPath without a completed search on the current
//     edit generation.
//
// An unreachable finish is not an error: the visit order simply ends without
// it and ReconstructPath returns the single cell [finish].
//
// Thread safety: a Grid is not safe for concurrent use. Edits and searches
// on the same Grid must be serialized by the caller.
package gridgraph
