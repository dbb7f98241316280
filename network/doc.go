// Package network implements fully connected feed-forward networks with
// sigmoid activations, trained by online back-propagation.
//
// Two concrete types share one implementation:
//
//   - ThreeLayer: input, one hidden layer, output.
//   - MultiLayer: any sequence of at least two layer sizes.
//
// Both satisfy Network. A network is a chain of Transitions; transition k
// holds an in×out weight matrix and a 1×out bias row, and activations are
// 1×n row vectors, so one layer step is sigmoid(a·W + b).
//
// Construction draws every parameter uniformly from [-1, 1) unless
// WithRandomRange says otherwise. Pass WithSeed for reproducible runs:
//
//	net, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	err = net.Learn(set, 5000, 0.5, network.WithErrorCallback(func(e float64) {
//		log.Printf("error %.4f", e)
//	}, 1000))
//
// Learn and FeedForward do not check samples against the network; call
// ValidateSamples first. Shape errors that slip through surface as
// matrix.ErrDimensionMismatch.
//
// Networks are not safe for concurrent use. training.Scheduler runs Epoch
// one step at a time for hosts that must stay responsive.
package network
