// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command hashpw prints a bcrypt hash suitable for USER_PASSWORD_HASH.
//
// On a terminal the password is read without echo and asked for twice.
// Otherwise the first line of standard input is used, so the tool can be
// scripted:
//
//	printf '%s\n' "$PASSWORD" | hashpw -cost 12
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/taibuivan/yomira-gate/internal/platform/sec"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

var (
	errEmptyPassword = errors.New("hashpw: password must not be empty")
	errMismatch      = errors.New("hashpw: passwords do not match")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cost := flags.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		fmt.Fprintf(stderr, "hashpw: cost must be between %d and %d\n", bcrypt.MinCost, bcrypt.MaxCost)
		return 2
	}

	password, err := obtainPassword(stdin, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	hash, err := sec.HashPassword(password, *cost)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, hash)
	return 0
}

// obtainPassword prompts on a terminal or reads one line from a pipe.
func obtainPassword(stdin *os.File, prompt io.Writer) (string, error) {
	fd := int(stdin.Fd())

	if !isTerminal(fd) {
		return readLine(stdin)
	}

	first, err := promptHidden(fd, prompt, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := promptHidden(fd, prompt, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errMismatch
	}
	if first == "" {
		return "", errEmptyPassword
	}
	return first, nil
}

func promptHidden(fd int, prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)
	secret, err := readPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("hashpw: read password: %w", err)
	}
	return string(secret), nil
}

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("hashpw: read stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}
