// Package huffman implements a static Huffman coder for whole byte buffers.
// It counts the byte frequencies of an input, builds a prefix-code tree from
// them, derives a code table from the tree, and encodes or decodes against
// that table.  The code is static: one tree per input, no adaptation.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE 40 (9), 1952
//
package huffman
