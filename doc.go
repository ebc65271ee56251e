// Package nucleusforce estimates the mechanical load a cell places on its
// nucleus from a flat-colored 2D segmentation.
//
// What:
//
//	Force is seeded on the cell boundary (or on hand-marked origin pixels) and
//	propagated inward until it rests on the nucleus. The resulting load is
//	reduced to a scalar total and a net 2D force vector.
//
// Packages, leaves first:
//
//	grid/      Grid[T], Conn4/Conn8 adjacency, shape checks, connected components
//	boundary/  8-connected cell boundary mask
//	distance/  multi-source BFS distance field from the nucleus
//	force/     MinDistance (priority-queue drain) and Layer (erosion) propagators
//	netforce/  nucleus centroid, net force vector, total load
//	imaging/   image decoding, color labelling, heatmaps
//	export/    CSV grid files
//	pipeline/  end-to-end run, artifacts, concurrent batches
//	bench/     runtime comparison of the propagators
//	config/    layered configuration with validation
//
// Quick example:
//
//	cell := grid.MustFrom2D([][]int{{1, 1, 1, 1}})
//	nucleus := grid.MustFrom2D([][]int{{0, 0, 0, 1}})
//	seed := grid.MustFrom2D([][]float64{{1, 0, 0, 0}})
//	f, _ := force.MinDistance(cell, nucleus, seed) // [[0 0 0 1]]
//
// The nucforce command (cmd/nucforce) wraps all of the above:
//
//	nucforce boundary cell.png -o output
//	nucforce marked marked.png -m layer
//	nucforce bench marked.png 100 --chart bench.png
//
//	go install github.com/katalvlaran/nucleusforce/cmd/nucforce@latest
package nucleusforce
