// Package broadphase2d is a broad-phase collision detection toolkit for 2D
// rigid-body simulation.
//
// 🚀 What is broadphase2d?
//
//	A generic, dependency-light library offering three interchangeable
//	spatial indices behind one shared contract:
//
//	  • bruteforce  — O(n²) reference index, a correctness oracle
//	  • sap         — sweep-and-prune over a self-balancing ordered tree
//	  • dynamictree — incremental dynamic AABB tree with SAH insertion
//
// ✨ Why choose broadphase2d?
//
//   - Generic       — any comparable object type, no base "body" interface
//   - Swappable     — every index satisfies broadphase.Index[T]; pick the
//     one that matches your object count and churn pattern
//   - Cooperative   — candidate-pair and query iterators resume exactly
//     where a previous call left off, with no hidden allocation per step
//   - Pure Go       — no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/        — Vec2, AABB, Ray, Transform and minimal shape types
//	broadphase/  — shared contracts: producers, expansion, filters, errors
//	bruteforce/  — the O(n²) reference index
//	avltree/     — generic self-balancing ordered tree backing sap
//	sap/         — the sweep-and-prune index
//	dynamictree/ — the dynamic AABB tree index
//
// Quick usage sketch:
//
//	idx := bruteforce.New[*Body](broadphase.FuncProducer[*Body](bodyAABB))
//	idx.Add(a)
//	idx.Add(b)
//	for _, pair := range idx.Detect(true) {
//	    narrowPhase(pair.A, pair.B)
//	}
//
//	go get github.com/ivalabs/broadphase2d
package broadphase2d
