// Package huffpack implements lossless Huffman compression of byte streams.
//
// The encoder scans its input once to count byte frequencies, builds a
// Huffman tree by repeatedly merging the two least frequent nodes, writes
// the frequency table as the stream header, and then re-reads the input,
// emitting one prefix-free code per byte, most significant bit first.  A
// reserved end-of-stream symbol terminates the payload, which is then
// zero-padded to a whole byte.  The decoder rebuilds the identical tree
// from the header and walks it bit by bit until the end-of-stream symbol
// decodes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
