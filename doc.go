// Package gridpath is an interactive shortest-path playground on a
// rectangular grid: draw walls, place a start and a finish, and watch a
// Dijkstra search flood the board before the path lights up.
//
// 🚀 What is in the box?
//
//	• Grid model: fixed-size board, walls, movable endpoints
//	• Engine: Dijkstra with a stable re-sort queue or a binary heap
//	• Path reconstruction from predecessor links
//	• Playback: a timed schedule of visit and path frames
//	• Sessions: many grids in memory, safe for concurrent use
//	• Front ends: a REST API (gin) and a terminal board (tcell)
//
// Everything is organized under these subpackages:
//
//	gridgraph/  Grid, Cell, Neighbors, ShortestPath, ReconstructPath, ASCII codec
//	playback/   Timeline of frames and Play
//	session/    Store and Session
//	api/        HTTP router and the grid controller
//	config/     environment and .env settings
//	tui/        terminal App
//	cmd/        gridpath-server and gridpath-tui binaries
//
// Quick ASCII example, after a search on an open 3×3 board:
//
//	Soo
//	*oo
//	**F
//
// S is the start, F the finish, o a visited cell and * the path.
package gridpath
