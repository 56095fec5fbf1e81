package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken provides convenient generation of valid JWTs for local testing.
func makeToken(secret string, userID int, username string) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.Itoa(userID),
		"username": username,
		"exp":      time.Now().Add(365 * 24 * time.Hour).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func main() {
	var secret, username string
	var userID int

	flag.StringVar(&secret, "secret", "secret_key", "signing secret, must match JWT_SECRET of the server")
	flag.StringVar(&username, "username", "local", "username claim")
	flag.IntVar(&userID, "user-id", 1, "subject claim")
	flag.Parse()

	fmt.Println("TOKEN=" + makeToken(secret, userID, username))
}
