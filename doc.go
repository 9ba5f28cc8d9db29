// Package filtra provides a small image-processing toolkit built around a
// floating-point RGB image buffer.
//
// # Overview
//
// filtra is organized as a sequence of independent filters over a shared
// Image type. There is no pipeline and no engine state: each filter is a
// pure function from a source image (plus parameters) to a destination
// image, applied one call at a time.
//
// # Quick Start
//
//	import (
//	    "github.com/filtra/filtra"
//	    "github.com/filtra/filtra/filter"
//	)
//
//	img, err := filtra.Load("photo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filter.Grayscale(img)
//	if err := img.Save("gray.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packages
//
//   - filtra: Color, Image, file I/O, logging
//   - filter: point, geometric, stochastic and windowed filters, plus the
//     separable convolution engine
//   - draw: procedural shapes, gradients, animation-frame export
//   - delta: differential (delta) channel encoding experiment
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down.
// Channel values are normalized to [0, 1].
package filtra
