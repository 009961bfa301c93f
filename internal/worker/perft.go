package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// CountNodes is the default ProcessFunc: it counts the leaves below the
// item's position.
func CountNodes(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.Perft(item.State, item.Depth),
	}
}

// splitRoot submits one item per legal root move of gs and returns the
// results in root move order. Every item gets its own silent copy of gs.
func splitRoot(gs *engine.GameState, depth, workers int, process ProcessFunc) []ProcessResult {
	root := gs.QuietClone()
	moves := root.LegalMoves()
	results := make([]ProcessResult, len(moves))
	if len(moves) == 0 {
		return results
	}

	pool := NewPool(process, WithWorkers(workers), WithBufferSize(len(moves)))
	pool.Start()
	for i, m := range moves {
		child := root.Clone()
		child.Apply(m)
		pool.Submit(WorkItem{State: child, Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}

// Divide is engine.Divide with the root moves spread over workers.
// Entries come back in root move order.
func Divide(gs *engine.GameState, depth, workers int) []engine.DivideEntry {
	if depth < 1 {
		return nil
	}
	results := splitRoot(gs, depth, workers, CountNodes)
	entries := make([]engine.DivideEntry, len(results))
	for i, r := range results {
		entries[i] = engine.DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}

// Perft is engine.Perft with the root moves spread over workers.
func Perft(gs *engine.GameState, depth, workers int) uint64 {
	if depth < 1 {
		return 1
	}
	var total uint64
	for _, e := range Divide(gs, depth, workers) {
		total += e.Nodes
	}
	return total
}

// UniquePositions counts the distinct positions reachable in exactly depth
// plies. Positions that differ only in move counters count once.
func UniquePositions(gs *engine.GameState, depth, workers int) int {
	if depth < 1 {
		return 1
	}
	counter := hashing.NewThreadSafePositionCounter(0)
	splitRoot(gs, depth, workers, func(item WorkItem) ProcessResult {
		collectLeaves(item.State, item.Depth, counter)
		return ProcessResult{Move: item.Move, Index: item.Index}
	})
	return counter.UniqueCount()
}

func collectLeaves(gs *engine.GameState, depth int, counter *hashing.ThreadSafePositionCounter) {
	if depth == 0 {
		counter.Add(hashing.Hash(gs))
		return
	}
	for _, m := range gs.LegalMoves() {
		gs.Apply(m)
		collectLeaves(gs, depth-1, counter)
		gs.Undo()
	}
}
