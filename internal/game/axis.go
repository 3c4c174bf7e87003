package game

// axis folds a pair of opposing held inputs into -1, 0 or +1.
func axis(neg, pos bool) int {
	v := 0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}
