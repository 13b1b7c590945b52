package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID produces a short identifier used to correlate log lines of
// one scheduler run.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
