// Package board holds the static room adjacency graph and the step-distance
// table derived from it.
package board

import (
	"fmt"
	"sort"
)

const (
	// StepsPerEdge is the walking cost of one room-to-room link
	StepsPerEdge = 4

	// Unreachable is the sentinel distance for rooms with no path between
	// them. Larger than any possible dice budget.
	Unreachable = 99
)

// Topology is the immutable board: an undirected adjacency graph plus the
// precomputed all-pairs distance table.
type Topology struct {
	rooms     []string
	adjacency map[string][]string
	distances map[string]map[string]int
}

// New validates the graph and precomputes all pairwise distances by BFS.
// It fails if an edge references an undefined room or if the graph is
// disconnected; both are configuration defects, not runtime conditions.
func New(graph map[string][]string) (*Topology, error) {
	rooms := make([]string, 0, len(graph))
	for room := range graph {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	for room, neighbors := range graph {
		for _, n := range neighbors {
			if _, ok := graph[n]; !ok {
				return nil, fmt.Errorf("board: room %q lists undefined neighbor %q", room, n)
			}
		}
	}

	t := &Topology{
		rooms:     rooms,
		adjacency: graph,
		distances: make(map[string]map[string]int, len(graph)),
	}
	for _, origin := range rooms {
		t.distances[origin] = t.bfs(origin)
	}

	for _, origin := range rooms {
		for _, dest := range rooms {
			if t.distances[origin][dest] == Unreachable {
				return nil, fmt.Errorf("board: no path from %q to %q", origin, dest)
			}
		}
	}
	return t, nil
}

// bfs computes distances from origin, each edge costing StepsPerEdge
func (t *Topology) bfs(origin string) map[string]int {
	dists := make(map[string]int, len(t.rooms))
	for _, room := range t.rooms {
		dists[room] = Unreachable
	}
	dists[origin] = 0

	queue := []string{origin}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range t.adjacency[curr] {
			if dists[n] != Unreachable {
				continue
			}
			dists[n] = dists[curr] + StepsPerEdge
			queue = append(queue, n)
		}
	}
	return dists
}

// Rooms returns all room names in sorted order
func (t *Topology) Rooms() []string {
	out := make([]string, len(t.rooms))
	copy(out, t.rooms)
	return out
}

// Distance returns the precomputed step distance between two rooms.
// 0 iff from == to; Unreachable for unknown rooms.
func (t *Topology) Distance(from, to string) int {
	row, ok := t.distances[from]
	if !ok {
		return Unreachable
	}
	d, ok := row[to]
	if !ok {
		return Unreachable
	}
	return d
}

// ValidDestinations returns every room reachable from current within the
// step budget, sorted. The current room is excluded; an empty result means
// the caller must treat the turn as a forced stay.
func (t *Topology) ValidDestinations(current string, budget int) []string {
	var valid []string
	for _, room := range t.rooms {
		d := t.Distance(current, room)
		if d > 0 && d <= budget {
			valid = append(valid, room)
		}
	}
	return valid
}
