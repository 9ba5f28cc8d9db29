// Package filter implements filtra's image filters.
//
// Filters fall into four groups:
//
//   - point filters (KeepChannel, SwapChannels, Grayscale, Negative,
//     Brightness) rewrite each pixel from its own value only and mutate the
//     image in place
//   - geometric filters (Mirror, Rotate90, SplitRGB) move pixels; those that
//     cannot work in place build a replacement buffer and swap it in
//   - stochastic filters (Noise, Glitch, PixelSort) take an explicit random
//     source so results are reproducible
//   - windowed filters (Convolve, BoxBlur, DifferenceOfGaussians, Kuwahara,
//     Pixelate, Mosaic, OrderedDither) read a frozen snapshot of the source
//     while writing, never the buffer being mutated
//
// The convolution engine (kernel.go, convolve.go, boxblur.go) is the only
// part with a nontrivial algorithm: box blur runs as two separable passes
// with a sliding running sum, so its cost is independent of the kernel size.
package filter
