// Package geometry provides Euclidean distances, angle conversion and a
// quadratic equation solver.
//
//	roots, _ := geometry.QuadraticRoots(1, 0, 1)
//	fmt.Println(roots[0], roots[1]) // 0 + 1i 0 - 1i
package geometry
