// Package ciede2000 implements the CIEDE2000 color-difference formula.
//
// It converts 8-bit sRGB triples to CIE Lab, measures the perceptual distance
// between two Lab colors and, given a reference color, a target distance and a
// hue direction, finds the a-b offset radius that reproduces that distance.
//
// Every function is pure. A Reference is an immutable value and may be shared
// between goroutines.
package ciede2000
