package strategy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"
)

// Summary collects the reporting view of a strategy: its compact form, the
// indented instructions, per-gusher latencies and risks, and their mean and
// population standard deviation.
type Summary struct {
	Compact      string
	Instructions string
	Latencies    map[string]float64
	Risks        map[string]float64
	MeanLatency  float64
	StdevLatency float64
	MeanRisk     float64
	StdevRisk    float64
}

// Summarize refreshes the tree's costs against g and gathers the reporting
// view over its findable gushers.
func Summarize(root *Node, g GraphModel) Summary {
	root.UpdateCosts(g, BasketLabel)
	findable := root.FindableNodes()

	latencies := lo.SliceToMap(findable, func(n *Node) (string, float64) {
		return n.String(), n.Latency
	})
	risks := lo.SliceToMap(findable, func(n *Node) (string, float64) {
		return n.String(), n.Risk
	})

	latValues := maps.Values(latencies)
	riskValues := maps.Values(risks)
	return Summary{
		Compact:      Write(root),
		Instructions: Instructions(root),
		Latencies:    latencies,
		Risks:        risks,
		MeanLatency:  stat.Mean(latValues, nil),
		StdevLatency: stat.PopStdDev(latValues, nil),
		MeanRisk:     stat.Mean(riskValues, nil),
		StdevRisk:    stat.PopStdDev(riskValues, nil),
	}
}

// Report renders the summary of a strategy as a printable block.
func Report(root *Node, g GraphModel) string {
	s := Summarize(root, g)
	var b strings.Builder
	fmt.Fprintln(&b, strings.Repeat("-", len(s.Compact)))
	fmt.Fprintln(&b, s.Compact)
	fmt.Fprintln(&b, s.Instructions)
	fmt.Fprintf(&b, "times: {%s}\n", formatCosts(s.Latencies))
	fmt.Fprintf(&b, "risks: {%s}\n", formatCosts(s.Risks))
	fmt.Fprintf(&b, "avg. time: %0.2f +/- %0.2f\n", s.MeanLatency, s.StdevLatency)
	fmt.Fprintf(&b, "avg. risk: %0.2f +/- %0.2f", s.MeanRisk, s.StdevRisk)
	return b.String()
}

func formatCosts(costs map[string]float64) string {
	names := maps.Keys(costs)
	slices.Sort(names)
	entries := lo.Map(names, func(name string, _ int) string {
		return fmt.Sprintf("%s: %0.2f", name, costs[name])
	})
	return strings.Join(entries, ", ")
}
