package config

import (
	"fmt"
	"log"
	"slices"
)

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustOneOf(value, envName string, allowed ...string) {
	if !slices.Contains(allowed, value) {
		log.Fatalf("%s", fmt.Sprintf("env %s=%q must be one of %v", envName, value, allowed))
	}
}
