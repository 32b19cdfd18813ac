package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCelsiusToFahrenheit(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(strings.NewReader("1\n100\n3\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Temperature Converter")
	assert.Contains(t, out.String(), "100°C = 212.00°F")
	assert.Contains(t, out.String(), "Thank you for using the Temperature Converter!")
}

func TestRunFahrenheitToCelsius(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(strings.NewReader("2\n32\n3\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "32°F = 0.00°C")
}

func TestRunInvalidNumber(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(strings.NewReader("1\nabc\n3\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid input! Please enter a valid number.")
}

func TestRunInvalidChoice(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(strings.NewReader("9\n3\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid choice! Please select 1, 2, or 3.")
}

func TestRunEOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Choose conversion type:")
}
