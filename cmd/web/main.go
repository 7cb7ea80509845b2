package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dwiprast/yt-trending/internal/common/config"
	"github.com/dwiprast/yt-trending/internal/common/logger"
	"github.com/dwiprast/yt-trending/internal/store"
	"github.com/dwiprast/yt-trending/internal/web/handler"
	"github.com/dwiprast/yt-trending/internal/youtube"
)

func main() {
	// Load the configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	webCfg := cfg.GetWebConfig()
	ytCfg := cfg.GetYouTubeConfig()

	// Initialize logger
	log := logger.New(cfg)

	log.Infof("Web panel configuration: %+v", webCfg)

	apiKey, err := config.LoadAPIKey(ytCfg.EnvFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load API key")
	}

	yt := youtube.NewClient(ytCfg.BaseURL, apiKey)

	st, err := store.Open(cfg.Archive.DSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to open archive")
	}
	defer st.Close()

	// Initialize the gin router
	r := gin.Default()

	// Setup handlers and register routes
	h := handler.New(ytCfg, log, yt, st)
	h.RegisterRoutes(r)

	// Start the web server
	addr := fmt.Sprintf("%s:%d", webCfg.Host, webCfg.Port)
	log.Infof("Starting web server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start web server: %v", err)
	}
}
