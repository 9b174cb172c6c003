package config

import (
	"fmt"
	"strings"
)

const (
	BankTone     = "tone"
	BankManifest = "manifest"
)

// NormalizeBank canonicalizes the letter bank selector. "recorded" is accepted
// as a synonym for the manifest bank.
func NormalizeBank(raw string) (string, error) {
	bank := strings.ToLower(strings.TrimSpace(raw))
	if bank == "" {
		bank = BankTone
	}
	switch bank {
	case BankTone, BankManifest:
		return bank, nil
	case "recorded":
		return BankManifest, nil
	default:
		return "", fmt.Errorf("invalid letter bank %q (expected %s|%s)", raw, BankTone, BankManifest)
	}
}
