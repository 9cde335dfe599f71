// Package walk provides the Walk value type produced by back-samplers.
//
// A Walk is a finite ordered sequence of lattice points. Walks generated
// for a target (x*, y*) over T time steps have length T+1, start at the
// origin and end at the target. Walks are write-once values: all
// transforms return a new Walk.
//
// Besides geometric transforms (Translate, Scale, Rotate) the package
// offers two similarity measures: the discrete Fréchet distance between
// two walks and the directness deviation of a walk from the straight
// line connecting its endpoints.
package walk
