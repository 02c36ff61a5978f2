// Package somtsp approximates travelling-salesman tours with a
// self-organizing map: a closed ring of 2·n nodes is pulled, epoch after
// epoch, toward n fixed cities until it threads through all of them.
//
// What is inside?
//
//	som/          the trainer: ring, epochs, winner search, neighborhood kernel
//	tour/         reading the city order off a ring, tour cost, 2-opt, polygon checks
//	internal/     config, metrics, the driver loop, snapshot streaming, HTTP, reports
//	cmd/somtsp/   the command-line front-end
//	examples/     a runnable scenario
//
// One epoch, in short:
//
//	for each city c in a fresh random order:
//	    w     = node nearest to c
//	    for each node i:
//	        d     = ring distance |w-i| (wrapping)
//	        theta = exp(-d² / (K / (0.01·epoch)²))
//	        i    += theta · rate · (c - i)
//
// Early epochs move broad stretches of the ring; as the epoch count grows
// the kernel narrows until only the winner and its immediate neighbors
// move, and the ring settles onto the cities.
//
// Quick ASCII example, four cities and the eight-node ring around them:
//
//	    C3 ·──· C2
//	    │        │
//	    ·        ·
//	    │        │
//	    C0 ·──· C1
//
// The trainer is pure and deterministic for a given seed. Everything that
// touches time, I/O or goroutines lives in internal/ and cmd/.
//
//	go run ./cmd/somtsp -cities 40 -epochs 800 -polish
package somtsp
