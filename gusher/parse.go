package gusher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CommentChar marks metadata lines in a layout description.
const CommentChar = "$"

// DefaultGroup is the penalty-table group matching every gusher without an
// explicit group.
const DefaultGroup = "."

// ErrLayout indicates a malformed layout description.
var ErrLayout = errors.New("gusher: malformed layout")

type penaltyGroup struct {
	members string
	penalty float64
}

// Parse reads a gusher layout description. The first comment line carries the
// display name and the second a penalty table of group:penalty pairs, where a
// group lists the gusher names it covers and "." is the fallback group. Every
// other non-empty line is an adjacency entry: a gusher name followed by its
// neighbors.
//
//	$ Spawning Grounds
//	$ ef:1.5 .:1
//	a b d
//	b c e
func Parse(r io.Reader) (*Graph, error) {
	g := New("")
	var groups []penaltyGroup
	comments := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, CommentChar) {
			comments++
			content := strings.TrimSpace(strings.TrimPrefix(line, CommentChar))
			switch comments {
			case 1:
				g.name = content
			case 2:
				parsed, err := parsePenalties(content)
				if err != nil {
					return nil, err
				}
				groups = parsed
			}
			continue
		}

		fields := strings.Fields(line)
		g.AddGusher(fields[0], DefaultPenalty)
		for _, neighbor := range fields[1:] {
			g.Connect(fields[0], neighbor)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: no adjacency entries", ErrLayout)
	}

	assignPenalties(g, groups)
	return g, nil
}

func parsePenalties(table string) ([]penaltyGroup, error) {
	var groups []penaltyGroup
	for _, pair := range strings.Fields(table) {
		members, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: penalty entry %q is not group:penalty", ErrLayout, pair)
		}
		penalty, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: penalty entry %q: %v", ErrLayout, pair, err)
		}
		groups = append(groups, penaltyGroup{members: members, penalty: penalty})
	}
	return groups, nil
}

// assignPenalties gives each gusher the penalty of the first group listing it,
// falling back to the default group, then to DefaultPenalty.
func assignPenalties(g *Graph, groups []penaltyGroup) {
	fallback := DefaultPenalty
	for _, group := range groups {
		if group.members == DefaultGroup {
			fallback = group.penalty
			break
		}
	}
	for _, v := range g.Vertices() {
		penalty := fallback
		for _, group := range groups {
			if group.members != DefaultGroup && strings.Contains(group.members, v) {
				penalty = group.penalty
				break
			}
		}
		g.penalties[v] = penalty
	}
}
