package huffman

// FrequencyTable maps each distinct byte value observed in some input to
// its number of occurrences.  Symbols that never occur have no entry, so
// the sum of all counts equals the length of the originating input.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tallies the occurrences of each distinct byte value in
// data.  It is total over all inputs: empty input yields an empty table.
func CountFrequencies(data []byte) FrequencyTable {
	ft := make(FrequencyTable)
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Total returns the sum of all counts, which equals the length of the
// input the table was built from.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		total += count
	}
	return total
}

// Symbols returns the table's symbols in ascending byte order.  Map
// iteration order is randomized, so anything that must be deterministic
// walks the table through this.
func (ft FrequencyTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(ft))
	for symbol := range ft {
		symbols = append(symbols, symbol)
	}
	sortSymbols(symbols)
	return symbols
}
