// Package som trains a Self-Organizing Map ring against a set of 2D cities so
// that the ring approximates a short Travelling Salesman tour.
//
// The ring holds 2·n nodes for n cities. Every epoch visits all cities in a
// fresh uniformly random order; for each city the nearest node wins and every
// node is pulled toward the city by a cyclic Gaussian neighborhood kernel:
//
//	d     = min(|w−i|, K−|w−i|)          (ring distance to the winner)
//	theta = exp(−d² / (K / (0.01·e)²))    (e = 1-based epoch, K = ring size)
//	pos  += theta · learningRate · (city − pos)
//
// The kernel narrows as e grows, so the ring first contracts as a whole and
// then unfolds around the cities. The schedule depends on the absolute epoch
// number, not on training progress.
//
// A Trainer is driven from outside: call Start, then Epoch at any cadence
// while IsRunning reports true, reading NodePositions after each call.
//
// Lifecycle:
//
//	Idle ──Start(maxEpochs>0)──▶ Running ──(epoch==maxEpochs | Stop)──▶ Stopped
//	  └──Start(maxEpochs==0)──▶ Stopped
//
// Stopped only leaves via Start. Epoch outside Running returns ErrNotRunning
// and changes nothing.
//
// Randomness is injectable (WithSeed, WithRand) so runs are reproducible.
// A Trainer is not safe for concurrent use; independent Trainers share nothing.
package som
