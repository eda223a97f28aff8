package bftape

// seekClosingBrace scans forward from start for the ] closing the loop whose [ sits just before start.
// No jump table is kept; every zero-cell loop entry scans again.
func seekClosingBrace(program Program, start int) (int, bool) {
	depth := 0
	for i := start; i < len(program); i++ {
		switch program[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}
