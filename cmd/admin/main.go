// Command admin manages the back-office account. It creates the admin user
// or resets its password; request handlers never write to the users table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/papsoui3/PortofolioSite/config"
	"github.com/papsoui3/PortofolioSite/internal/auth"
	"github.com/papsoui3/PortofolioSite/internal/bootstrap"
	"github.com/papsoui3/PortofolioSite/internal/storage/postgres"
)

func main() {
	username := flag.String("username", "admin", "account username")
	password := flag.String("password", "", "account password (required)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: admin -username <name> -password <secret>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := postgres.EnsureSchema(sqlDB); err != nil {
		log.Fatalf("schema: %v", err)
	}
	sqlDB.Close()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	id, err := auth.NewRepo(pool).Upsert(ctx, *username, *password, true)
	if err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	fmt.Printf("admin account %q ready (id %s)\n", *username, id)
}
