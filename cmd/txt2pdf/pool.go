package main

import "runtime"

// availableCPUs returns the CPU count GOMAXPROCS resolved to, which
// automaxprocs has already aligned with any container quota.
func availableCPUs() int {
	return runtime.GOMAXPROCS(0)
}
