// Bootstrap script: creates the rank_items table and seeds a few example
// entries. Safe to re-run; the seed skips rows whose site_name already
// exists.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/betpicks/betsites-api/infrastructure/database/postgres"
	"github.com/betpicks/betsites-api/internal/config"
	"github.com/betpicks/betsites-api/internal/domain"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS rank_items (
	id TEXT PRIMARY KEY,
	site_name TEXT NOT NULL,
	logo TEXT NOT NULL,
	advantages TEXT[] NOT NULL,
	welcome_bonus TEXT NOT NULL,
	payments TEXT[] NOT NULL,
	promo_code TEXT NOT NULL,
	rank INTEGER NOT NULL,
	create_account_url TEXT,
	download_app_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT rank_items_site_name_key UNIQUE (site_name),
	CONSTRAINT rank_items_rank_key UNIQUE (rank)
)`

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("starting rank_items bootstrap...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERROR loading configuration: %v", err)
	}

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("ERROR opening database handle: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ERROR reaching database: %v", err)
	}

	if _, err := conn.Exec(createTableStatement); err != nil {
		log.Fatalf("ERROR creating rank_items table: %v", err)
	}
	log.Println("rank_items table ready")

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return seedRankItems(tx, seedItems())
	}); err != nil {
		log.Fatalf("ERROR seeding rank_items: %v", err)
	}

	log.Println("bootstrap finished")
}

func seedRankItems(tx *sql.Tx, items []domain.RankItem) error {
	stmt, err := tx.Prepare(`
		INSERT INTO rank_items
			(id, site_name, logo, advantages, welcome_bonus, payments, promo_code, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (site_name) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	startTime := time.Now()
	successCount := 0

	for i, item := range items {
		result, err := stmt.Exec(
			uuid.New().String(),
			item.SiteName,
			item.Logo,
			pq.Array(item.Advantages),
			item.WelcomeBonus,
			pq.Array(item.Payments),
			item.PromoCode,
			item.Rank,
		)
		if err != nil {
			log.Printf("ERROR inserting seed [%d/%d] %s: %v", i+1, len(items), item.SiteName, err)
			return err
		}

		if affected, _ := result.RowsAffected(); affected > 0 {
			successCount++
		} else {
			log.Printf("seed %s already present, skipped", item.SiteName)
		}
	}

	log.Printf("seed finished in %v, inserted: %d/%d", time.Since(startTime), successCount, len(items))
	return nil
}

func seedItems() []domain.RankItem {
	return []domain.RankItem{
		{
			SiteName:     "Acme Bet",
			Logo:         "https://cdn.betpicks.example/logos/acme.png",
			Advantages:   []string{"Fast payouts", "Live streaming"},
			WelcomeBonus: "100% up to $200",
			Payments:     []string{"Visa", "Mastercard", "Skrill"},
			PromoCode:    "ACME100",
			Rank:         1,
		},
		{
			SiteName:     "BetNordic",
			Logo:         "https://cdn.betpicks.example/logos/betnordic.png",
			Advantages:   []string{"No-wager free spins"},
			WelcomeBonus: "50 free spins",
			Payments:     []string{"Visa", "Trustly"},
			PromoCode:    "NORDIC50",
			Rank:         2,
		},
		{
			SiteName:     "GoalRush",
			Logo:         "https://cdn.betpicks.example/logos/goalrush.png",
			Advantages:   []string{"Daily odds boosts", "Cash out"},
			WelcomeBonus: "$30 in free bets",
			Payments:     []string{"PayPal", "Visa"},
			PromoCode:    "RUSH30",
			Rank:         3,
		},
	}
}
