// Package gusher models a gusher layout as an undirected graph: two gushers are
// adjacent when opening one gives a high/low reading about the other. Each gusher
// carries a penalty weight, and pairs of locations may carry travel distances.
package gusher

import (
	"slices"

	"golang.org/x/exp/maps"
)

// DefaultPenalty is assigned to gushers with no explicit penalty.
const DefaultPenalty = 1.0

// DefaultDistance is the travel cost between locations with no explicit distance.
const DefaultDistance = 1.0

// Graph is a concrete gusher layout. The zero value is not usable; construct
// with New.
type Graph struct {
	name      string
	adjacency map[string]map[string]bool
	penalties map[string]float64
	distances map[string]map[string]float64
}

// New creates an empty gusher graph with the given display name.
func New(name string) *Graph {
	return &Graph{
		name:      name,
		adjacency: make(map[string]map[string]bool),
		penalties: make(map[string]float64),
		distances: make(map[string]map[string]float64),
	}
}

// Name returns the display name of the layout.
func (g *Graph) Name() string {
	return g.name
}

// AddGusher registers a gusher with the given penalty weight. Adding an
// existing gusher updates its penalty and keeps its connections.
func (g *Graph) AddGusher(name string, penalty float64) {
	if g.adjacency[name] == nil {
		g.adjacency[name] = make(map[string]bool)
	}
	g.penalties[name] = penalty
}

// Connect adds a bidirectional connection between two gushers, registering
// either endpoint if it is new.
func (g *Graph) Connect(u, v string) {
	if u == v {
		return
	}
	for _, name := range []string{u, v} {
		if g.adjacency[name] == nil {
			g.adjacency[name] = make(map[string]bool)
			g.penalties[name] = DefaultPenalty
		}
	}
	g.adjacency[u][v] = true
	g.adjacency[v][u] = true
}

// SetDistance records a symmetric travel distance between two locations. Either
// location may be a gusher or the basket label.
func (g *Graph) SetDistance(u, v string, distance float64) {
	for _, pair := range [][2]string{{u, v}, {v, u}} {
		if g.distances[pair[0]] == nil {
			g.distances[pair[0]] = make(map[string]float64)
		}
		g.distances[pair[0]][pair[1]] = distance
	}
}

// Vertices returns all gusher names in lexicographic order.
func (g *Graph) Vertices() []string {
	names := maps.Keys(g.adjacency)
	slices.Sort(names)
	return names
}

// Len returns the number of gushers.
func (g *Graph) Len() int {
	return len(g.adjacency)
}

// Adjacent reports whether opening u gives a reading about v (and vice versa).
func (g *Graph) Adjacent(u, v string) bool {
	return g.adjacency[u][v]
}

// Penalty returns the risk weight of a gusher, or DefaultPenalty for unknown names.
func (g *Graph) Penalty(v string) float64 {
	if p, ok := g.penalties[v]; ok {
		return p
	}
	return DefaultPenalty
}

// Distance returns the travel distance between two locations, or
// DefaultDistance when no distance was recorded.
func (g *Graph) Distance(u, v string) float64 {
	if d, ok := g.distances[u][v]; ok {
		return d
	}
	return DefaultDistance
}

// DegreeWithin counts the members of subset adjacent to v.
func (g *Graph) DegreeWithin(v string, subset []string) int {
	degree := 0
	for _, u := range subset {
		if g.adjacency[v][u] {
			degree++
		}
	}
	return degree
}
