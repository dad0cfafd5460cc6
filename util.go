package huffman

import (
	"sort"
)

func sortSymbols(symbols []Symbol) {
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
}

func bytesForBits(n int) int {
	return (n + 7) / 8
}
