package scan

// frequent lists bytes from most to least common in English prose and source
// code. Bytes not listed are treated as rare.
const frequent = " etaoinsrhldcumfpgwyb,.vk-_\"'=()0123456789TSAEIONRHLDCMBPFWGY;:/\n*{}[]<>!?xjqzXJQZ"

var ranks = func() (r [256]byte) {
	for i := 0; i < len(frequent); i++ {
		r[frequent[i]] = byte(255 - i)
	}
	return r
}()

// Rank returns the relative frequency of b; lower means rarer.
// Non-ASCII bytes rank 0.
func Rank(b byte) byte {
	return ranks[b]
}
