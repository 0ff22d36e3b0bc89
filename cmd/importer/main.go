// Package main is the bulk import tool. It reads a JSON export of journey
// videos and creates them through the catalog API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"journey-catalog-service/internal/config"
	"journey-catalog-service/internal/logger"
	"journey-catalog-service/pkg/client"
)

// record is one entry in the JSON export.
type record struct {
	Title      string   `json:"title"`
	YoutubeID  string   `json:"youtubeId"`
	EmbedURL   string   `json:"embedUrl"`
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Reflection string   `json:"reflection"`
	Tags       []string `json:"tags"`
}

func main() {
	var (
		file     = flag.String("file", "videos.json", "path to the JSON export")
		username = flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	)
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: "console",
			Output: "stdout",
		},
		logger.SentryConfig{},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("failed to read export file", zap.String("file", *file), zap.Error(err))
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatal("failed to parse export file", zap.Error(err))
	}
	log.Info("loaded export", zap.String("file", *file), zap.Int("videos", len(records)))

	api := client.New(client.Config{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Retry: client.RetryConfig{
			MaxAttempts: cfg.Client.Retry.MaxAttempts,
			WaitTime:    cfg.Client.Retry.WaitTime,
			MaxWaitTime: cfg.Client.Retry.MaxWaitTime,
		},
		CB: client.CBConfig{
			MaxRequests:  cfg.Client.CB.MaxRequests,
			Interval:     cfg.Client.CB.Interval,
			Timeout:      cfg.Client.CB.Timeout,
			FailureRatio: cfg.Client.CB.FailureRatio,
		},
	}, log.Logger)

	ctx := context.Background()

	session, err := api.Login(ctx, *username, *password)
	if err != nil {
		log.Fatal("login failed", zap.Error(err))
	}
	log.Info("logged in", zap.String("username", session.Username))

	imported := 0
	for _, r := range records {
		created, err := api.CreateVideo(ctx, session, client.VideoDraft{
			Title:      r.Title,
			YoutubeID:  r.YoutubeID,
			EmbedURL:   r.EmbedURL,
			Day:        strconv.Itoa(r.Day),
			Date:       r.Date,
			Reflection: r.Reflection,
			Tags:       strings.Join(r.Tags, ","),
		})
		if err != nil {
			log.Error("import failed",
				zap.Int("day", r.Day),
				zap.String("title", r.Title),
				zap.Error(err),
			)

			continue
		}

		imported++
		log.Info("imported video",
			zap.String("id", created.ID),
			zap.Int("day", created.Day),
		)
	}

	log.Info("import finished",
		zap.Int("imported", imported),
		zap.Int("failed", len(records)-imported),
	)
}
