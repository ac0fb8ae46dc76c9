package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/strength"
)

const (
	maxMenuLength = 128
	maxMenuCount  = 20
)

// runMenu drives the interactive menu loop. The reader/writer parameters
// allow testing without real stdin/stdout; the loop ends on option 4 or
// when input runs out.
func runMenu(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "\nWelcome to PassForge!")
	fmt.Fprintln(w, "Create strong, random passwords for your accounts.")

	for {
		printMenu(w)
		fmt.Fprint(w, "Enter your choice (1-4): ")
		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			generateSingle(scanner, w)
		case "2":
			generateMultiple(scanner, w)
		case "3":
			generateCustom(scanner, w)
		case "4":
			fmt.Fprintln(w, "\nThank you for using PassForge!")
			return
		default:
			fmt.Fprintln(w, "\nInvalid choice. Please enter 1-4.")
		}
	}
}

func printMenu(w io.Writer) {
	divider := strings.Repeat("=", 50)
	fmt.Fprintln(w, "\n"+divider)
	fmt.Fprintln(w, "        PASSFORGE PASSWORD GENERATOR")
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "\n1. Generate Single Password")
	fmt.Fprintln(w, "2. Generate Multiple Passwords")
	fmt.Fprintln(w, "3. Custom Password (Advanced)")
	fmt.Fprintln(w, "4. Exit")
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func generateSingle(scanner *bufio.Scanner, w io.Writer) {
	length, ok := promptInt(scanner, w, "Enter password length (default 12): ", generator.MinLength, maxMenuLength)
	if !ok {
		return
	}

	opts := generator.DefaultOptions()
	opts.Length = length

	password, err := generator.Generate(opts)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	printPassword(w, "Your Generated Password:", password)
}

func generateMultiple(scanner *bufio.Scanner, w io.Writer) {
	count, ok := promptInt(scanner, w, "How many passwords? ", 1, maxMenuCount)
	if !ok {
		return
	}
	length, ok := promptInt(scanner, w, "Password length (default 12): ", generator.MinLength, maxMenuLength)
	if !ok {
		return
	}

	opts := generator.DefaultOptions()
	opts.Length = length

	passwords, err := generator.GenerateBatch(count, opts)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	divider := strings.Repeat("=", 50)
	fmt.Fprintln(w, "\n"+divider)
	fmt.Fprintln(w, "Your Generated Passwords:")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for i, pw := range passwords {
		fmt.Fprintf(w, "%d. %s (%d/100)\n", i+1, pw, strength.Score(pw))
	}
	fmt.Fprintln(w, divider)
}

func generateCustom(scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "\nCustom Password Generation")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	length, ok := promptInt(scanner, w, "Password length: ", generator.MinLength, maxMenuLength)
	if !ok {
		return
	}
	uppercase, ok := promptYesNo(scanner, w, "Include uppercase letters? (y/n): ")
	if !ok {
		return
	}
	digits, ok := promptYesNo(scanner, w, "Include numbers? (y/n): ")
	if !ok {
		return
	}
	special, ok := promptYesNo(scanner, w, "Include special characters? (y/n): ")
	if !ok {
		return
	}

	password, err := generator.Generate(generator.Options{
		Length:    length,
		Uppercase: uppercase,
		Digits:    digits,
		Special:   special,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	printPassword(w, "Your Custom Password:", password)
}

func printPassword(w io.Writer, heading, password string) {
	divider := strings.Repeat("=", 50)
	fmt.Fprintln(w, "\n"+divider)
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  %s\n", password)
	fmt.Fprintln(w, strings.Repeat("-", 50))

	score := strength.Score(password)
	fmt.Fprintf(w, "Strength: %s (%d/100)\n", strength.LabelFor(score), score)
	fmt.Fprintln(w, divider)
}

// promptInt loops until the user enters an integer in [min, max]. The
// second return value is false only when input runs out.
func promptInt(scanner *bufio.Scanner, w io.Writer, prompt string, min, max int) (int, bool) {
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return 0, false
		}

		value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "Invalid input. Please enter a number.")
			continue
		}
		if value < min {
			fmt.Fprintf(w, "Please enter a number >= %d\n", min)
			continue
		}
		if value > max {
			fmt.Fprintf(w, "Please enter a number <= %d\n", max)
			continue
		}
		return value, true
	}
}

// promptYesNo loops until the user answers y/yes or n/no.
func promptYesNo(scanner *bufio.Scanner, w io.Writer, prompt string) (bool, bool) {
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return false, false
		}

		value, recognized := parseYesNo(scanner.Text())
		if !recognized {
			fmt.Fprintln(w, "Please enter 'y' or 'n'")
			continue
		}
		return value, true
	}
}

// parseYesNo accepts y/yes and n/no case-insensitively.
func parseYesNo(s string) (value, recognized bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
