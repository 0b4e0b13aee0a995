// cmd/hashpw generates a salt and password hash for seeding admin users.
//
// Usage:
//
//	hashpw <password>
//
// The printed values go into the users table's salt and password_hash columns.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"afairytale/internal/adapters/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	password := os.Args[1]

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	salt, err := hasher.GenerateSalt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate salt: %v\n", err)
		os.Exit(1)
	}
	hash, err := hasher.Hash(salt, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("salt:          %s\n", salt)
	fmt.Printf("password_hash: %s\n", hash)
}
