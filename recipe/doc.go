// Package recipe compiles a declarative list of steps into a pipeline
// stage over int64 values. Recipes are usually loaded from the seqkit
// config file:
//
//	recipe:
//	  name: top-three-window-sums
//	  steps:
//	    - op: window_sum
//	      size: 2
//	    - op: rank
//	      count: 3
//	      descending: true
//
// Supported ops are exclude, move, pad, distinct, without_equal, between,
// take, batch_sum, window_sum, rank and sample.
package recipe
