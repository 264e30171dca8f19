package pli

import (
	"sort"

	"github.com/BUYT-1/Desbordante/model"
)

const noCluster = -1

// Cluster is one equivalence class: a non-singleton set of row ids that
// agree on every attribute of the set the owning PLI was built for.
type Cluster []model.RowID

// PLI is a stripped position-list index over some attribute set. Clusters
// are ordered and that order is part of the contract: it drives the
// deterministic ordering required by Intersect and, downstream, by the
// miner and verifier's reproducible output.
type PLI struct {
	clusters []Cluster
	// probe maps a row id to its cluster's position in clusters, or
	// noCluster if the row belongs to no cluster (it was stripped as a
	// singleton, or is excluded by the null policy).
	probe []int32
}

// NumCluster returns the number of clusters.
func (p *PLI) NumCluster() int {
	return len(p.clusters)
}

// Clusters returns the ordered cluster list. Callers must not mutate it.
func (p *PLI) Clusters() []Cluster {
	return p.clusters
}

// ClusterOf returns the cluster containing row, or (nil, false) if row
// belongs to no cluster.
func (p *PLI) ClusterOf(row model.RowID) (Cluster, bool) {
	id, ok := p.ProbeID(row)
	if !ok {
		return nil, false
	}
	return p.clusters[id], true
}

// ProbeID returns the internal index of row's cluster within Clusters(),
// or (-1, false) if row belongs to no cluster.
func (p *PLI) ProbeID(row model.RowID) (int, bool) {
	if int(row) >= len(p.probe) {
		return -1, false
	}
	idx := p.probe[row]
	if idx == noCluster {
		return -1, false
	}
	return int(idx), true
}

// NumRows returns the size of the relation the PLI was built over (the
// length of the probing vector), not the number of rows actually clustered.
func (p *PLI) NumRows() int {
	return len(p.probe)
}

// nullGroupKey is a sentinel outside the representable range of an interned
// value id, used to group all nulls together under equalNulls=true.
const nullGroupKey = int64(-1 << 62)

// Build groups numRows rows by key, stripping singleton groups. isNull, if
// non-nil, flags rows whose value is null; under equalNulls=false every
// null row is forced into its own singleton (and therefore stripped),
// matching the spec's null policy. Rows are visited in ascending row id
// order, so cluster membership order and first-occurrence order are both
// deterministic.
func Build(keys []int64, isNull []bool, equalNulls bool) *PLI {
	numRows := len(keys)
	probe := make([]int32, numRows)
	for i := range probe {
		probe[i] = noCluster
	}

	type group struct {
		rows []model.RowID
	}
	// index groups by key via a Go map, not insertion-ordered scan-of-P
	// bucketing, because keys are already dense interned int64s rather than
	// raw values to compare pairwise; orderByFirstRow below restores the
	// scan-order determinism a literal bucket-by-scan implementation would
	// give for free.
	index := make(map[int64]*group, numRows)

	for r := 0; r < numRows; r++ {
		key := keys[r]
		if isNull != nil && isNull[r] {
			if !equalNulls {
				// Each null row is its own singleton: never clustered.
				continue
			}
			key = nullGroupKey
		}
		g, ok := index[key]
		if !ok {
			g = &group{}
			index[key] = g
		}
		g.rows = append(g.rows, model.RowID(r))
	}

	var clusters []Cluster
	for _, g := range index {
		if len(g.rows) < 2 {
			continue
		}
		clusters = append(clusters, Cluster(g.rows))
	}

	clusters = orderByFirstRow(clusters)
	return &PLI{clusters: clusters, probe: reprobe(clusters, probe)}
}

// orderByFirstRow re-sorts clusters by the ascending row id of their first
// member so that Build's output order does not depend on Go's map
// iteration order, which is intentionally randomized.
func orderByFirstRow(clusters []Cluster) []Cluster {
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })
	return clusters
}

func reprobe(clusters []Cluster, probe []int32) []int32 {
	out := make([]int32, len(probe))
	for i := range out {
		out[i] = noCluster
	}
	for id, c := range clusters {
		for _, row := range c {
			out[row] = int32(id)
		}
	}
	return out
}

// Universal returns the identity PLI for the empty attribute set: every
// row agrees trivially with every other row, so a single cluster holds all
// of them (stripped away entirely if numRows < 2). It is the starting point
// for intersecting a chain of per-attribute PLIs when the chain is empty,
// i.e. when computing PLI(∅).
func Universal(numRows int) *PLI {
	probe := make([]int32, numRows)
	if numRows < 2 {
		for i := range probe {
			probe[i] = noCluster
		}
		return &PLI{probe: probe}
	}
	rows := make(Cluster, numRows)
	for i := 0; i < numRows; i++ {
		rows[i] = model.RowID(i)
		probe[i] = 0
	}
	return &PLI{clusters: []Cluster{rows}, probe: probe}
}

// Intersect computes the PLI for the union of p's and q's underlying
// attribute sets. For every cluster of p, each member row is bucketed by
// its cluster id in q; rows whose q-probe is the sentinel are dropped.
// Non-singleton buckets become clusters of the result. Bucket order within
// a p-cluster follows first-seen order of q's cluster id; p-clusters are
// visited in p's own order. This ordering is deterministic, so repeated
// intersections of the same inputs yield identical cluster lists.
func (p *PLI) Intersect(q *PLI) *PLI {
	numRows := len(p.probe)
	result := &PLI{probe: make([]int32, numRows)}
	for i := range result.probe {
		result.probe[i] = noCluster
	}

	for _, c := range p.clusters {
		order := make([]int32, 0, len(c))
		buckets := make(map[int32][]model.RowID)
		for _, row := range c {
			qID := noCluster
			if int(row) < len(q.probe) {
				qID = int(q.probe[row])
			}
			if qID == noCluster {
				continue
			}
			bucket, seen := buckets[int32(qID)]
			if !seen {
				order = append(order, int32(qID))
			}
			buckets[int32(qID)] = append(bucket, row)
		}
		for _, qID := range order {
			bucket := buckets[qID]
			if len(bucket) < 2 {
				continue
			}
			clusterID := int32(len(result.clusters))
			result.clusters = append(result.clusters, Cluster(bucket))
			for _, row := range bucket {
				result.probe[row] = clusterID
			}
		}
	}
	return result
}
