// Package main runs the fitlog MCP server over stdio.
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/dashboard"
	workoutsmcp "github.com/2beens/fitlog/internal/workouts/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	repo := workouts.NewRepo(dbPool)
	aggregator, err := dashboard.NewAggregator(repo, dashboard.Config{
		Location:   cfg.Location(),
		StreakMode: cfg.StreakMode,
		Lookback:   cfg.StreakLookback,
	})
	if err != nil {
		log.Fatalf("aggregator: %v", err)
	}

	server := workoutsmcp.NewServer(dbPool, repo, aggregator)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
