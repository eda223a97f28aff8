package vars

// FirstNonZero picks the first value that is set, so callers can list sources by precedence.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
