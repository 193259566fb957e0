package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/auth"
)

// Dev utility: signs a bearer token for a given user so the API can be
// exercised without the external identity provider.
func main() {
	secret := os.Getenv("BETTER_AUTH_SECRET")
	if secret == "" {
		log.Fatal("BETTER_AUTH_SECRET not set")
	}

	sub := flag.String("sub", "", "subject (user id) for the token")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		log.Fatal("-sub is required")
	}

	verifier := auth.NewVerifier(secret)
	token, err := verifier.Sign(*sub, *email, *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Println(token)
}
