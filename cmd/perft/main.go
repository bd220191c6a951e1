// Command perft cross-validates move generation against published perft
// reference counts. It prints one line per root move with that move's
// subtree leaf count at depth-1, exactly the "perft divide" format (§6,
// §4.12), plus the grand total.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hailam/chesscore/internal/applog"
	"github.com/hailam/chesscore/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "perft depth in plies")
	flag.Parse()

	log := applog.L()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalw("invalid FEN", "fen", *fen, "error", err)
	}
	if *depth < 0 {
		fmt.Fprintln(os.Stderr, "depth must be non-negative")
		os.Exit(1)
	}

	entries := board.PerftDivide(pos, *depth)

	var total int64
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Printf("\nNodes searched: %d\n", total)
}
