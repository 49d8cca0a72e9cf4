// Package main issues bearer tokens and secret hashes for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/sethvargo/go-envconfig"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	owner := flag.String("owner", "", "owner id (token subject)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token time to live")
	hashSecret := flag.String("hash-mcp-secret", "", "print the bcrypt hash of the given MCP secret and exit")
	flag.Parse()

	if *hashSecret != "" {
		hash, err := pkg.HashPassword(*hashSecret)
		if err != nil {
			fail("hash secret: %s", err)
		}
		fmt.Println(hash)
		return
	}

	if *owner == "" {
		fail("owner not set, use -owner")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fail("load config: %s", err)
	}
	secrets, err := config.LoadSecrets(context.Background(), envconfig.OsLookuper())
	if err != nil {
		fail("load secrets: %s", err)
	}

	token, err := auth.SignToken(
		auth.Config{Secret: secrets.JWTSecret, Issuer: cfg.JWTIssuer},
		*owner,
		uuid.New().String(),
		time.Now().Add(*ttl),
	)
	if err != nil {
		fail("sign token: %s", err)
	}
	fmt.Println(token)
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
