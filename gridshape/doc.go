// Package gridshape implements the five canonical single-depth alignment
// graph shapes (global, local, fitting, overlap — rotational is built atop
// fitting in the rotational package) plus the three-depth extended-gap
// (affine) shape.
//
// Every shape shares the same diagonal/down/right local adjacency; they
// differ only in which boundary freeride edges they add and where their
// root and leaf sit. baseGrid is that shared core.
package gridshape
