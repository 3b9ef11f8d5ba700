// Package primext collects small helpers over primitive values, mgl32
// vectors and fixed-size tuples. The helpers live in subpackages; this
// package only carries the errors they share.
package primext
