// Package lvlann is a small, dependency-light toolkit for dense linear
// algebra and fully connected neural networks trained by back-propagation.
//
// Everything is organized into focused subpackages:
//
//	matrix/         row-major Dense matrix, in-place and pure kernels,
//	                  determinant, inverse, gonum bridge, sentinel errors
//	activation/     sigmoid, derivative, inverse, clamping
//	rng/            seeded linear congruential generator for reproducible runs
//	network/        ThreeLayer and MultiLayer networks, samples, resize, JSON
//	training/       Scheduler that runs a Task one step per host tick
//	cmd/lvlann-xor  demo binary training XOR under the scheduler
//
// Quick start:
//
//	net, _ := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
//	_ = net.Learn(set, 5000, 0.5)
//	y, _ := net.FeedForward([]float64{1, 0})
//
// Conventions:
//
//   - Activations are 1×n row vectors; weights are in×out; biases are 1×out.
//   - Errors are sentinels matched with errors.Is; nothing panics on bad input
//     except option constructors given nonsensical constants.
//   - Computation is synchronous and deterministic for a fixed seed.
package lvlann
