// Package sigma computes how weak selection moves the frequency of public-goods
// producers on a graph-structured population, exactly and by simulation.
//
// 🚀 What is sigma?
//
//	A small numerical toolkit built around death–birth updating:
//		• Structures: build graphs (karate club, lattices, random families)
//		• Exact path: reproductive values, identity-by-state, K1/K2 coefficients
//		• Goods: additive ("ff") and proportional ("pp") payoff rules
//		• Simulation: long-run trait frequencies under mutation
//		• Sweeps: both paths over a mutation-rate grid, in parallel
//
// Under the hood, everything is organized as follows:
//
//	core/       — mutable undirected graph used while constructing structures
//	builder/    — deterministic and seeded graph constructors
//	structure/  — immutable index-based view of a connected population
//	matrix/     — dense LU, CSR and LSQR used by the exact path
//	goods/      — the two public-good kinds
//	exact/      — structure coefficients and first-order effects f'(0)
//	simulation/ — death–birth Markov chain and its long-run mean
//	sweep/      — mutation-rate grids and the bounded parallel map
//	internal/   — configuration, SQLite results store, command-line interface
//	cmd/sigma/  — the sigma binary
//
// Quick example, first-order effects on a 5-cycle:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	s, _ := structure.FromGraph(g)
//	rates, _ := sweep.ExactRates(10)
//	res, _ := exact.Run(ctx, s, 3, 1, rates)
//	fmt.Println(res.Additive, res.Proportional)
//
//	go install github.com/katalvlaran/sigma/cmd/sigma@latest
package sigma
