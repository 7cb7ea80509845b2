package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/dwiprast/yt-trending/internal/common/config"
	"github.com/dwiprast/yt-trending/internal/common/logger"
	"github.com/dwiprast/yt-trending/internal/export"
	"github.com/dwiprast/yt-trending/internal/store"
	"github.com/dwiprast/yt-trending/internal/youtube"
)

func main() {
	var (
		region  = pflag.StringP("region", "r", "", "region code, e.g. US, CA")
		limit   = pflag.IntP("limit", "n", 0, "number of trending videos to fetch")
		toJSON  = pflag.Bool("json", false, "save output to trending_<region>.json")
		toCSV   = pflag.Bool("csv", false, "save output to trending_<region>.csv")
		archive = pflag.Bool("archive", false, "save a snapshot to the archive database")
		envFile = pflag.String("env-file", "", "path to an env file holding "+config.APIKeyVar)
	)
	pflag.Parse()

	// Load the configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	log := logger.New(cfg)

	// Flags win over config defaults
	if *region == "" {
		*region = cfg.YouTube.Region
	}
	if *limit == 0 {
		*limit = cfg.YouTube.MaxResults
	}
	if *envFile == "" {
		*envFile = cfg.YouTube.EnvFile
	}

	apiKey, err := config.LoadAPIKey(*envFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load API key")
	}

	yt := youtube.NewClient(cfg.YouTube.BaseURL, apiKey)

	ctx := context.Background()
	data, err := yt.Trending(ctx, *region, *limit)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch trending videos")
	}

	log.WithFields(logrus.Fields{
		"region": *region,
		"count":  len(data.Items()),
	}).Infof("Fetched top %d trending videos in %s", len(data.Items()), *region)

	if *toJSON {
		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("trending_%s.json", *region))
		if err := export.WriteJSON(data, path); err != nil {
			log.WithError(err).Fatal("Failed to write JSON")
		}
		log.WithField("file", path).Info("Saved JSON")
	}

	if *toCSV {
		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("trending_%s.csv", *region))
		if err := export.WriteCSV(data, path); err != nil {
			log.WithError(err).Fatal("Failed to write CSV")
		}
		log.WithField("file", path).Info("Saved CSV")
	}

	if *archive {
		st, err := store.Open(cfg.Archive.DSN)
		if err != nil {
			log.WithError(err).Fatal("Failed to open archive")
		}
		defer st.Close()

		id, err := st.SaveSnapshot(ctx, *region, data)
		if err != nil {
			log.WithError(err).Fatal("Failed to archive snapshot")
		}
		log.WithField("snapshot", id).Info("Archived snapshot")
	}
}
