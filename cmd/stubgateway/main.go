// Runs the upstream API stand-in for local development:
//
//	go run ./cmd/stubgateway
//
// then point the dashboard at it with UPSTREAM_BASE_URL=http://localhost:5000.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/RichelleAnne09/agots-express-dashboard/stubgateway"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	db, err := stubgateway.OpenDB(os.Getenv("STUB_DB_DSN"))
	if err != nil {
		log.Fatalf("failed to open stub database: %v", err)
	}
	if err := stubgateway.Migrate(db); err != nil {
		log.Fatalf("failed to migrate stub database: %v", err)
	}

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "5000"
	}

	r := stubgateway.NewServer(db)
	log.Printf("stub gateway listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
