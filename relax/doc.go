// Package relax implements the Martello-Toth linear relaxation of a
// mono-objective view and the bi-objective composite relaxation built from
// three such mono views.
//
// The bound-set relaxation .3 (solving a reduced bi-objective
// instance via phase-1 to test whether a fixing improves a lower bound set)
// lives in package fixing instead, to avoid a relax -> biobj -> relax import
// cycle: it is expressed there as a small adapter over a caller-supplied
// phase-1 function.
package relax
