/*
Package dominotrain finds the best single train in a game of Mexican Train.

Given the open end of a train (the starting value) and a pool of double-12
dominoes, the solver searches every chain that can be laid from the open end
and returns the one with the highest total pips, or with the most tiles.
Ties keep the chain found first when pool tiles are tried in input order.

# Usage

The simplest entry point is FindBestTrain:

	train := dominotrain.FindBestTrain(3, []domain.Tile{
		domain.MustTile(3, 5),
		domain.MustTile(5, 5),
		domain.MustTile(5, 8),
	}, domain.ObjectiveScore)

	fmt.Println(train) // [3|5] -> [5|5] -> [5|8]

A Solver adds validation, result caching, search budgets and hooks:

	solver := dominotrain.New(
		dominotrain.WithStore(memory.NewStore()),
		dominotrain.WithTimeout(2*time.Second),
	)
	result, err := solver.Solve(ctx, puzzle)

# Architecture

The module follows a hexagonal layout. pkg/domain holds the pure model,
pkg/ports the interfaces for puzzle libraries, result caches and locks, and
pkg/adapters their implementations (memory, file, loam, redis) along with the
HTTP and MCP surfaces. The search itself lives in internal/search.
*/
package dominotrain
