package traverse

// Sub-word numeric kinds are never represented natively downstream; they are
// promoted to the next wider kind at the traversal boundary. int8, int16 and
// rune widen to int; float32 widens to float64. All conversions here are
// lossless for every representable value.

// Widen8 promotes an int8 traversal to int.
func Widen8(source Traversal[int8]) Traversal[int] {
	return Mapped(source, func(v int8) int { return int(v) })
}

// Widen16 promotes an int16 traversal to int.
func Widen16(source Traversal[int16]) Traversal[int] {
	return Mapped(source, func(v int16) int { return int(v) })
}

// WidenRune promotes a rune traversal to int.
func WidenRune(source Traversal[rune]) Traversal[int] {
	return Mapped(source, func(v rune) int { return int(v) })
}

// WidenFloat32 promotes a float32 traversal to float64.
func WidenFloat32(source Traversal[float32]) Traversal[float64] {
	return Mapped(source, func(v float32) float64 { return float64(v) })
}
