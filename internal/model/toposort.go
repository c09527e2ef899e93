package model

import (
	"errors"
	"fmt"
	"sort"
)

var errCycle = errors.New("cycle detected")

// topoSort returns node indices in dependency order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must come before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, the nodes that could be ordered are
// returned together with errCycle; every missing index is on or behind a cycle.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	// Deterministic traversal.
	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}

// InheritanceOrder returns the interfaces of f ordered so that every parent
// declared in the same file precedes its children. Parents declared elsewhere
// impose no ordering. Interfaces caught in a parent cycle are returned in
// cyclic, in declaration order.
//
// ValidateFile reads only cyclic. ordered is for callers that must set up
// parent wrapper types before their children.
func InheritanceOrder(f *File) (ordered, cyclic []*InterfaceUnit) {
	var ifaces []*InterfaceUnit

	index := make(map[string]int)

	for _, u := range f.Units {
		if iu, ok := u.(*InterfaceUnit); ok {
			index[iu.ClassName] = len(ifaces)
			ifaces = append(ifaces, iu)
		}
	}

	order, err := topoSort(len(ifaces), func(i int) []int {
		if p, ok := index[ifaces[i].Parent]; ok && ifaces[i].Parent != "" {
			return []int{p}
		}

		return nil
	})

	seen := make([]bool, len(ifaces))
	for _, i := range order {
		seen[i] = true
		ordered = append(ordered, ifaces[i])
	}

	if err != nil {
		for i, ok := range seen {
			if !ok {
				cyclic = append(cyclic, ifaces[i])
			}
		}
	}

	return ordered, cyclic
}
