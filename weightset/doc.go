// Package weightset implements the tri-objective weight-set (phase-1)
// polygon: for a supported extreme point y, the polytope of weight vectors
// λ that scalarise to y ("Weight set (phase-1)"). For three
// objectives this is a polygon in barycentric (λ1, λ2) coordinates over the
// probability simplex {λ≥0, Σλ=1}, refined by half-plane cuts contributed by
// neighbouring extreme points.
package weightset
