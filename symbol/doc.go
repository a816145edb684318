// Package symbol describes the boundary between tinyqrc and QR symbol
// encoders: the module grid an encoder produces, the four error correction
// levels, and the encoder backends tinyqrc ships with.
//
// Encoders are treated as black boxes. Any of them can be swapped for a test
// double that returns a fixed Grid.
package symbol
