// Package exec provides the injectable execution context that backs
// parallel stream drains. A Context bounds how many partitions run
// concurrently; the fork/join recursion in package stream does the joining.
package exec
