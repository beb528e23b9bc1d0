// Command gridpath-server serves grid sessions over HTTP.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	gridapi "github.com/katalvlaran/gridpath/api/grid"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/playback"
	"github.com/katalvlaran/gridpath/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] loading config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	store := session.NewStore(cfg.MaxGridCells, log.New(os.Stdout, "", log.LstdFlags))
	log.Printf("[APP] [INFO] session store initialized (max %d cells)", cfg.MaxGridCells)

	gridController, err := gridapi.NewGridController(store,
		playback.WithVisitDelay(cfg.VisitDelay),
		playback.WithPathDelay(cfg.PathDelay))
	if err != nil {
		log.Fatalf("[APP] [FATAL] creating grid controller: %v", err)
	}
	log.Println("[APP] [INFO] grid controller initialized")

	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []api.Controller{gridController},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Run(ctx); err != nil {
		log.Fatalf("[APP] [FATAL] server stopped: %v", err)
	}
	log.Println("[APP] [INFO] server stopped")
}
