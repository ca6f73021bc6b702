package dominotrain_test

import (
	"context"
	"fmt"
	"log"

	dominotrain "github.com/jml312/domino-train"
	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/domain"
)

// ExampleFindBestTrain shows the plain search entry point.
func ExampleFindBestTrain() {
	pool := []domain.Tile{
		domain.MustTile(3, 5),
		domain.MustTile(5, 5),
		domain.MustTile(8, 5),
	}

	train := dominotrain.FindBestTrain(3, pool, domain.ObjectiveScore)
	fmt.Println(train)
	fmt.Println(train.Score())
	// Output:
	// [3|5] -> [5|5] -> [5|8]
	// 31
}

// ExampleSolver_Solve solves a puzzle from an in-memory library with caching.
func ExampleSolver_Solve() {
	puzzle, err := domain.NewPuzzle(12, domain.ObjectiveScore,
		[2]int{12, 4}, [2]int{4, 4}, [2]int{4, 9}, [2]int{12, 1})
	if err != nil {
		log.Fatal(err)
	}
	puzzle.ID = "demo"

	library, err := memory.NewLoader(*puzzle)
	if err != nil {
		log.Fatal(err)
	}

	solver := dominotrain.New(dominotrain.WithStore(memory.NewStore()))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		p, err := library.Load(ctx, "demo")
		if err != nil {
			log.Fatal(err)
		}
		result, err := solver.Solve(ctx, p)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s value=%d cached=%v\n", result.Train, result.Value, result.Cached)
	}
	// Output:
	// [12|4] -> [4|4] -> [4|9] value=37 cached=false
	// [12|4] -> [4|4] -> [4|9] value=37 cached=true
}

// ExampleFindBestTrain_length shows that the length objective prefers more tiles.
func ExampleFindBestTrain_length() {
	pool := []domain.Tile{
		domain.MustTile(0, 12),
		domain.MustTile(0, 1),
		domain.MustTile(1, 2),
	}

	fmt.Println(dominotrain.FindBestTrain(0, pool, domain.ObjectiveScore))
	fmt.Println(dominotrain.FindBestTrain(0, pool, domain.ObjectiveLength))
	// Output:
	// [0|12]
	// [0|1] -> [1|2]
}
