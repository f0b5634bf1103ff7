// Package synth generates the synthetic salary table.
//
// Generation is fully determined by the dataset definition and the seed:
// the same inputs always produce the same table. The only entropy source is
// a PCG generator seeded by the caller.
package synth
