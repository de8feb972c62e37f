package memory

// cloneSlice copies s and keeps the nil/empty distinction so JSON renders [] not null.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
