package main

import (
	"fmt"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/gradehub/resultportal-backend/internal/config"
)

// hash-password produces a bcrypt hash for the ADMIN_PASSWORD_HASH setting,
// so the admin password never has to sit in plaintext config.
func main() {
	cfg := config.Load()

	fmt.Println("=== Hash Admin Password ===")

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Newline after password input
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	if len(bytePassword) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	fmt.Print("Confirm Password: ")
	byteConfirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	if string(bytePassword) != string(byteConfirm) {
		fmt.Println("Error: Passwords do not match")
		return
	}

	hash, err := bcrypt.GenerateFromPassword(bytePassword, cfg.BcryptCost)
	if err != nil {
		fmt.Printf("Error: Failed to hash password: %v\n", err)
		return
	}

	fmt.Println("\nAdd this to your environment:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", string(hash))
}
