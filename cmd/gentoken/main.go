package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"Skillnet/internal/api/middleware"
	"Skillnet/internal/config"
)

// gentoken mints a bearer token for local testing, signed with JWT_SECRET
//
// Usage:
//
//	JWT_SECRET=... go run ./cmd/gentoken -user 1 -ttl 24h
func main() {
	userID := flag.Int64("user", 0, "user id to put in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	var env struct {
		JWTSecret string `env:"JWT_SECRET,required"`
	}
	if err := config.ParseEnv(&env); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	if *userID <= 0 {
		log.Fatal("-user must be a positive user id")
	}

	token, err := middleware.IssueToken(env.JWTSecret, *userID, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
