// tokengen mints a signed bearer token for local testing.
//
// Usage:
//
//	KEY=secret go run ./cmd/tokengen -sub dev -roles USER,PERSON -ttl 1h
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
)

func main() {
	sub := flag.String("sub", "dev", "token subject")
	roles := flag.String("roles", "USER", "comma-separated roles")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	issuer := flag.String("iss", "autokit", "token issuer")
	flag.Parse()

	key, ok := os.LookupEnv("KEY")
	if !ok {
		fmt.Fprintln(os.Stderr, "environment variable is not set: KEY")
		os.Exit(1)
	}

	signer := jwt.NewGolangJWTSigner(&config.JWT{JTILength: 16, Issuer: *issuer}, key)
	token, err := signer.Sign(*sub, strings.Split(*roles, ","), *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
