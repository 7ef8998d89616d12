// Package adapter is the conversion boundary between splittable traversals
// and lazy streams: a symmetric family of entry points, one per element
// kind and evaluation mode, each a one-line delegation to a single generic
// wrap.
//
// Sub-word numeric kinds never reach a stream natively: int8, int16 and
// rune widen to int, float32 widens to float64, losslessly, at the
// traversal boundary. Requesting parallel mode for a source that cannot
// split is not an error; the drain degrades to a single partition.
//
//	s := adapter.IntPar(traverse.FromSlice(nums))
//	doubled := stream.Map(s, func(_ context.Context, n int) (int, error) { return n * 2, nil })
//	out, err := stream.ToSlice(ctx, doubled)
package adapter
