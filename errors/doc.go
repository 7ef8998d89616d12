// Package errors defines the streamkit error taxonomy: structured errors
// with machine-readable codes, optional detail maps, and cause chaining.
package errors
