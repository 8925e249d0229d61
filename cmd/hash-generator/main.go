// Package main implements a small CLI that prints bcrypt hashes in the format
// stored in users.password, for seeding accounts such as administrators.
//
// Usage:
//
//	hash-generator [-cost 12] password...
//	echo "password" | hash-generator
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/tasks-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 12

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

// run hashes each password argument, or each non-empty stdin line when no
// arguments are given, writing one hash per line to out.
func run(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cost := fs.Int("cost", defaultCost, "bcrypt cost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, *cost)
	}

	passwords := fs.Args()
	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(passwords) == 0 {
		return fmt.Errorf("no password given")
	}

	for _, password := range passwords {
		hash, err := auth.HashPassword(password, *cost)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
