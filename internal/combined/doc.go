// Package combined exercises the three dispatch packages side by side:
// behavioral equivalence tests, factory uniformity tests, and benchmarks of
// the identical workload under each dispatch mechanism.
//
// The side-by-side numbers are the point of the repository: same observable
// contract, same randomized workload, three dispatch mechanisms.
package combined
