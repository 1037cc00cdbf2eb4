// Package results models structural analysis result quantities (nodal
// displacements, element forces and moments, stress and strain tensors) as
// elements of a vector space, so load cases can be superposed, and
// transforms them between coordinate systems.
//
// Linear variants (Node, Element0D, Element1D) rotate as vectors, v' = R·v.
// Tensor variants (Element2D, Element3D) rotate with T' = R·T·Rᵀ.
//
// Binary operators never mutate their operands. ScaleInPlace, DivInPlace and
// Element0D.FlipSigns mutate the receiver and need external synchronization
// when the receiver is shared.
package results
