// Package loop runs a renderer and a fixed-rate simulation side by side.
//
// Two goroutines share one lifecycle flag. The render loop runs on the caller's
// goroutine and is paced only by the surface's Present. The simulation loop
// converts wall-clock time into a constant stream of logical ticks with an
// Accumulator and reports frame/update rates about once a second.
package loop
