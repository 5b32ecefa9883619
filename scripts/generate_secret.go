package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

func main() {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal("Error generating secret:", err)
	}

	secret := base64.RawURLEncoding.EncodeToString(buf)
	fmt.Printf("JWT_SECRET=%s\n", secret)
}
