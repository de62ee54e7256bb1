package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/gammazero/deque"
	"github.com/katalvlaran/spectral/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   deque.Deque[queueItem]
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, or the
// context error on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartNodeNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.queue.PushBack(queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.PopFront()
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nb := range neighbors {
			if !w.visited[nb] {
				w.enqueue(nb, next, item.id)
			}
		}
	}

	return nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest node id.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]bool, g.NodeCount())
	var (
		out   [][]int
		queue deque.Deque[int]
	)
	for _, root := range g.Nodes() {
		if seen[root] {
			continue
		}
		comp := []int{}
		seen[root] = true
		queue.PushBack(root)
		for queue.Len() > 0 {
			v := queue.PopFront()
			comp = append(comp, v)
			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, fmt.Errorf("bfs: neighbors of %d: %w", v, err)
			}
			for _, nb := range neighbors {
				if !seen[nb] {
					seen[nb] = true
					queue.PushBack(nb)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}

// CountComponents returns len(Components(g)).
func CountComponents(g *core.Graph) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
