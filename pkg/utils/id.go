package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID creates a short identifier used to correlate the log lines of
// a single export run.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
