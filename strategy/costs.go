package strategy

// aggregate recomputes this node's subtree totals from its children. It is the
// bottom-up fast path run on attachment; children's recorded distances stand in
// for graph lookups until UpdateCosts resolves them.
func (n *Node) aggregate() {
	var sizeHigh, sizeLow int
	var latHigh, latLow, riskHigh, riskLow float64
	var distHigh, distLow float64
	if n.High != nil {
		sizeHigh = n.High.Size
		latHigh = n.High.TotalLatency
		riskHigh = n.High.TotalRisk
		distHigh = n.High.Distance
	}
	if n.Low != nil {
		sizeLow = n.Low.Size
		latLow = n.Low.TotalLatency
		riskLow = n.Low.TotalRisk
		distLow = n.Low.Distance
	}

	n.Size = sizeLow + sizeHigh
	if n.Findable {
		n.Size++
	}
	n.TotalLatency = latLow + distLow*float64(sizeLow) + latHigh + distHigh*float64(sizeHigh)
	n.TotalRisk = riskLow + riskHigh + n.Weight*n.TotalLatency
}

// UpdateCosts refreshes distances, latencies and risks of the whole subtree
// top-down. Distances are resolved through g when supplied, otherwise the
// recorded distances stand. The root's latency is the travel cost from start.
// Call on the root of a tree after structural or distance changes.
func (n *Node) UpdateCosts(g GraphModel, start string) {
	n.updateCosts(g, start, 0, 0)
}

func (n *Node) updateCosts(g GraphModel, start string, parentLatency, predecessorWeight float64) {
	if n.Parent != nil {
		if g != nil {
			n.Distance = g.Distance(n.Parent.Name, n.Name)
		}
		n.Latency = parentLatency + n.Distance
		n.Risk = n.Parent.Risk + predecessorWeight*n.Distance
	} else {
		if g != nil {
			n.Latency = g.Distance(start, n.Name)
			// Every findable node's latency includes the lead-in from the
			// basket, which the bottom-up aggregate could not know.
			n.TotalLatency += n.Latency * float64(n.Size)
		} else {
			n.Latency = 0
		}
		n.Risk = 0
	}

	if n.High != nil {
		n.High.updateCosts(g, start, n.Latency, predecessorWeight+n.Weight)
	}
	if n.Low != nil {
		n.Low.updateCosts(g, start, n.Latency, predecessorWeight+n.Weight)
	}
}

// ScoreTree refreshes all costs and then recomputes the root's TotalLatency
// and TotalRisk as sums over findable nodes, replacing the bottom-up
// aggregates. This pass is authoritative; call it before reading tree totals.
func (n *Node) ScoreTree(g GraphModel, start string) {
	n.UpdateCosts(g, start)
	n.TotalLatency, n.TotalRisk = 0, 0
	for _, node := range n.FindableNodes() {
		n.TotalLatency += node.Latency
		n.TotalRisk += node.Risk
	}
}
