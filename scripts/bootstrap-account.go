package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sitesmith/sitesmith/internal/auth"
	"github.com/sitesmith/sitesmith/internal/model"
	"github.com/sitesmith/sitesmith/internal/repository"
)

type output struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "admin@sitesmith.local", "Account email")
		password    = flag.String("password", "", "Account password (generated when empty)")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	pass := *password
	if pass == "" {
		token, err := auth.GenerateSessionToken()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate password:", err)
			os.Exit(1)
		}
		// Random, long enough, and easy to paste
		pass = strings.TrimPrefix(token, "st_")[:24]
	}
	if len(pass) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(pass)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	account := &model.Account{
		ID:           ulid.Make().String(),
		Email:        *email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateAccount(ctx, account); err != nil {
		fmt.Fprintln(os.Stderr, "create account:", err)
		os.Exit(1)
	}

	out := output{
		AccountID: account.ID,
		Email:     account.Email,
		Password:  pass,
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.Email, out.Password)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
