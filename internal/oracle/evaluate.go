package oracle

// Evaluate returns the parity of word over the active doors of def.
// With no active door the result is false for every input.
func Evaluate(def Definition, word Word) bool {
	res := false
	for i := 0; i < def.Length; i++ {
		if def.Doors[i] {
			res = res != word[i]
		}
	}
	return res
}
