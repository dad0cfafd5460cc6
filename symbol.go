package huffman

// Symbol represents one input byte value.  The alphabet is always the full
// byte range, so Symbol is an alias rather than a distinct type; it exists
// to keep signatures readable.
type Symbol = byte

// AlphabetSize is the number of distinct Symbol values.
const AlphabetSize = 256
