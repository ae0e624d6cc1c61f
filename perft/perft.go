// Package perft counts the leaf nodes reachable from a position, the
// standard oracle for move generator correctness.
package perft

import "chess-perft/chess"

// Perft counts leaf nodes at the given depth with c to move. Each pseudo-legal
// move is made, kept if it does not leave c's king in check, and always unmade.
func Perft(depth int, b *chess.Board, c chess.Color) uint64 {
	return New(Options{}).Count(depth, b, c)
}

// Options configures a Counter.
type Options struct {
	// StrictCastling drops castles that start in, pass through or land on an
	// attacked square, matching the published perft tables.
	StrictCastling bool
	// CacheMB sizes the transposition table; 0 disables it.
	CacheMB int
}

// Counter runs perft with reusable per-depth move buffers.
type Counter struct {
	strict bool
	table  *Table
	bufs   [][]chess.Move
}

// New returns a Counter for the given options.
func New(opts Options) *Counter {
	pc := &Counter{strict: opts.StrictCastling}
	if opts.CacheMB > 0 {
		pc.table = NewTable(opts.CacheMB)
	}
	return pc
}

// Count counts leaf nodes from b at depth with c to move. The board is
// returned to its original state.
func (pc *Counter) Count(depth int, b *chess.Board, c chess.Color) uint64 {
	if depth <= 0 {
		return 1
	}
	return pc.count(depth, b, c)
}

// Divide returns, for each legal root move, the leaf count below it.
func (pc *Counter) Divide(depth int, b *chess.Board, c chess.Color) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves(c) {
		if !pc.allowed(b, m) {
			continue
		}
		u := b.MakeMove(m)
		if !b.KingInCheck(c) {
			result[m] = pc.Count(depth-1, b, c.Other())
		}
		b.UnmakeMove(u)
	}
	return result
}

// Table returns the Counter's transposition table, or nil when disabled.
func (pc *Counter) Table() *Table { return pc.table }

func (pc *Counter) bufFor(depth int) []chess.Move {
	for depth >= len(pc.bufs) {
		pc.bufs = append(pc.bufs, nil)
	}
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]chess.Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func (pc *Counter) allowed(b *chess.Board, m chess.Move) bool {
	return !pc.strict || b.CastleIsSafe(m)
}

func (pc *Counter) count(depth int, b *chess.Board, c chess.Color) uint64 {
	if depth == 0 {
		return 1
	}

	var key uint64
	if pc.table != nil && depth > 1 {
		key = b.Hash() ^ chess.SideKey(c)
		if nodes, ok := pc.table.Probe(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	moves := b.GenerateMovesInto(pc.bufFor(depth), c)
	for _, m := range moves {
		if !pc.allowed(b, m) {
			continue
		}
		u := b.MakeMove(m)
		if !b.KingInCheck(c) {
			nodes += pc.count(depth-1, b, c.Other())
		}
		b.UnmakeMove(u)
	}

	if pc.table != nil && depth > 1 {
		pc.table.Store(key, depth, nodes)
	}
	return nodes
}
