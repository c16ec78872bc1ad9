// Package util holds small helpers shared by the seqkit command: argument
// parsing, output formatting and run ids.
package util
