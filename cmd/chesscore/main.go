// Command chesscore is a minimal text driver over the external interface
// (§6): it reads UCI-style move strings from stdin, applies them as user
// moves, and after each one lets the engine reply. It exists to exercise
// Game end-to-end outside of a test binary, not as a full GUI — the
// graphical presentation is explicitly someone else's problem (§1).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hailam/chesscore/internal/applog"
	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/game"
)

func main() {
	fen := flag.String("fen", "", "starting FEN (defaults to the standard opening position)")
	configPath := flag.String("config", "chessrc.toml", "path to engine config")
	flag.Parse()

	log := applog.L()
	defer applog.Sync()

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		log.Fatalw("failed to load engine config", "path", *configPath, "error", err)
	}
	eng := engine.NewEngine(cfg)

	var g *game.Game
	if *fen == "" {
		g = game.New()
	} else {
		g, err = game.NewFromFEN(*fen)
		if err != nil {
			log.Fatalw("invalid starting FEN", "fen", *fen, "error", err)
		}
	}

	fmt.Println(g.ExportFEN())
	fmt.Println("enter moves as UCI (e2e4), 'undo', or 'quit'")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit", "exit":
			return
		case "undo":
			if err := g.UndoLast(); err != nil {
				fmt.Println("error:", err)
			}
			continue
		}

		if err := playUserMove(g, line); err != nil {
			fmt.Println("error:", err)
			continue
		}

		move, outcome, err := g.EngineMove(eng)
		if err != nil {
			log.Errorw("engine move failed", "error", err)
			continue
		}
		if move != nil {
			fmt.Printf("engine plays %s (%s)\n", move, outcome)
		} else {
			fmt.Printf("game over: %s\n", outcome)
		}
		fmt.Println(g.ExportFEN())
	}
}

func playUserMove(g *game.Game, uci string) error {
	if len(uci) < 4 {
		return fmt.Errorf("malformed move %q", uci)
	}

	from, err := board.ParseSquare(uci[0:2])
	if err != nil {
		return err
	}
	to, err := board.ParseSquare(uci[2:4])
	if err != nil {
		return err
	}

	promotion := board.NoPieceType
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promotion = board.Knight
		case 'b':
			promotion = board.Bishop
		case 'r':
			promotion = board.Rook
		case 'q':
			promotion = board.Queen
		default:
			return fmt.Errorf("unknown promotion piece %q", uci[4:])
		}
	}

	outcome, err := g.ApplyUserMove(from, to, promotion)
	if err != nil {
		if errors.Is(err, game.ErrPromotionRequired) {
			return fmt.Errorf("promotion required: resubmit as %s<n|b|r|q>", uci)
		}
		return err
	}

	fmt.Printf("you play %s (%s)\n", uci, outcome)
	return nil
}
