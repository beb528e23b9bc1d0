// Command gridpath-tui runs the interactive pathfinding board in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
	"github.com/katalvlaran/gridpath/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] loading config: %v", err)
	}

	rows := flag.Int("rows", cfg.GridRows, "board rows")
	cols := flag.Int("cols", cfg.GridCols, "board columns")
	queueName := flag.String("queue", "linear", "frontier: linear or heap")
	flag.Parse()

	q, err := gridgraph.ParseQueue(*queueName)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	g, err := gridgraph.NewSizedGrid(*rows, *cols)
	if err != nil {
		log.Fatalf("[APP] [FATAL] creating grid: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.SetStyle(tcell.StyleDefault)

	app := tui.New(screen, g,
		tui.WithQueue(q),
		tui.WithPlayback(
			playback.WithVisitDelay(cfg.VisitDelay),
			playback.WithPathDelay(cfg.PathDelay)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	app.Run(ctx)
}
