package common

type Float interface {
	~float32 | ~float64
}

func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. hi wins when lo > hi.
func Clamp[T Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
