package hashpassword

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"inkwell/internal/infrastructure/auth"
	"inkwell/internal/infrastructure/config"
)

var env string

// NewCommand returns a command that derives a credential hash/salt pair from
// a password read off the terminal, for seeding deployments by hand.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Derive a password hash and salt for manual credential seeding",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) == 0 {
		return fmt.Errorf("password cannot be empty")
	}

	hasher := auth.NewPBKDF2PasswordHasher(cfg.Auth.Password.Iterations)
	hash, salt, err := hasher.Hash(string(password))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Printf("hash: %s\nsalt: %s\n", hash, salt)
	return nil
}
