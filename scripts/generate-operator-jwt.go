//go:build ignore

// This script generates an operator token for the deposit endpoints.
// Run with: OPERATOR_JWT_SECRET=... go run scripts/generate-operator-jwt.go -sub ops -iss fusion-operator

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secretEnv := flag.String("secret-env", "OPERATOR_JWT_SECRET", "Environment variable holding the HMAC secret")
	subject := flag.String("sub", "operator", "Token subject")
	issuer := flag.String("iss", "", "Token issuer, must match auth.issuer when set")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv(*secretEnv)
	if secret == "" {
		fmt.Fprintf(os.Stderr, "environment variable %s is not set\n", *secretEnv)
		os.Exit(1)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": *subject,
		"iat": now.Unix(),
		"exp": now.Add(*ttl).Unix(),
	}
	if *issuer != "" {
		claims["iss"] = *issuer
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Claims:")
	claimsJSON, _ := json.MarshalIndent(claims, "", "  ")
	fmt.Println(string(claimsJSON))
	fmt.Println()
	fmt.Println("Use it as: Authorization: Bearer <token>")
}
