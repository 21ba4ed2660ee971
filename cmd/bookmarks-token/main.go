// Command bookmarks-token prints a signed bearer token for the bookmarks API.
// The server accepts it only when started with -jwt or API_JWT=true.
//
//	API_TOKEN=secret bookmarks-token -sub alice -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MikhailRaia/bookmarks/internal/auth"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	subject := flag.String("sub", "bookmarks-client", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	secret := flag.String("t", "", "Signing secret, defaults to API_TOKEN")
	flag.Parse()

	_ = godotenv.Load()

	if *secret == "" {
		*secret = os.Getenv("API_TOKEN")
	}

	token, err := auth.NewTokenVerifier(*secret).IssueToken(*subject, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to issue token")
	}

	fmt.Println(token)
}
