// Package residual measures how closely an approximation tracks its target.
//
// Both signals are compared sample by sample over one period. The result
// reports mean-squared and RMS error, the worst absolute deviation and its
// position, and the overshoot of the approximation's peak above the
// target's peak, which exposes the Gibbs phenomenon of truncated Fourier
// series near discontinuities.
package residual
