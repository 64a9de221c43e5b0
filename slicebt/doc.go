// Package slicebt is the sliced (Hirschberg-style) divide-and-conquer
// backtracker: Subdivide's recursive row bisection, composed with
// package segment in FindMaxPath. It uses linear working memory (two walker
// rows plus a resident table) to find a maximum-weight path through a
// quadratic alignment graph.
package slicebt
