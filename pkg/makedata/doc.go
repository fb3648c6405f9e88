// Package makedata generates synthetic person records for demos and tests.
//
// # Overview
//
// Records are produced as a forest: one slice per depth level, where each
// entry may carry its own slice of children. The shape is controlled by a
// variadic list of level sizes:
//
//	people := makedata.Make(100000)  // flat list
//	people := makedata.Make(10, 5)   // 10 parents with 5 children each
//	people := makedata.Make()        // empty
//
// A node has children only when a non-zero size is given for the next
// level. Leaves always have a nil SubRows slice.
//
// # Randomness
//
// Field values are drawn independently for every record. [Make] uses a
// process-wide generator seeded from the runtime; use [New] with
// [WithSeed] for reproducible content:
//
//	g := makedata.New(makedata.WithSeed(42))
//	people := g.Make(3)
//
// Shape is always deterministic for a given list of sizes. Content is
// deterministic only for a fixed seed and clock.
//
// # Concurrency
//
// A [Generator] is not safe for concurrent use. [Make] serializes access to
// the shared default generator.
package makedata
