// Command tempconv is an interactive Celsius/Fahrenheit converter.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"scrubkit/internal/units"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	banner := strings.Repeat("=", 40)

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Temperature Converter")
	fmt.Fprintln(out, banner)

	for {
		fmt.Fprintln(out, "\nChoose conversion type:")
		fmt.Fprintln(out, "1. Celsius to Fahrenheit")
		fmt.Fprintln(out, "2. Fahrenheit to Celsius")
		fmt.Fprintln(out, "3. Exit")

		fmt.Fprint(out, "\nEnter your choice (1-3): ")

		choice, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		if choice == "3" {
			fmt.Fprintln(out, "Thank you for using the Temperature Converter!")

			return nil
		}

		if choice != "1" && choice != "2" {
			fmt.Fprintln(out, "Invalid choice! Please select 1, 2, or 3.")

			continue
		}

		fmt.Fprint(out, "Enter temperature value: ")

		raw, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(out, "Invalid input! Please enter a valid number.")

			continue
		}

		if choice == "1" {
			fmt.Fprintf(out, "\n%g°C = %.2f°F\n", value, units.CelsiusToFahrenheit(value))
		} else {
			fmt.Fprintf(out, "\n%g°F = %.2f°C\n", value, units.FahrenheitToCelsius(value))
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
