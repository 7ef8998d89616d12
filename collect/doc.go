// Package collect defines the builder capability a stream drains into:
// incremental insertion plus an associative merge of partial builders for
// parallel drains. Built-in collectors cover slices, sets, maps, counts,
// numeric sums, and string joining.
package collect
