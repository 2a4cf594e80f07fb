// Package mosp computes multi-objective one-to-all shortest paths.
//
// Every edge carries a vector of k non-negative costs. For a source node the
// search returns, per node, the set of Pareto-optimal paths: no other path is
// at most as expensive in every objective and cheaper in at least one.
//
// The search settles one label at a time in lexicographic cost order. Each node
// keeps at most one queued candidate; after a label of a node is settled the
// next candidate of that node is regenerated from the frontiers of its
// predecessors, resuming per in-edge where the previous scan stopped.
package mosp
