// Package pronounce exposes a static English pronunciation dictionary that
// maps lowercase words to ARPAbet phoneme sequences.
package pronounce

import (
	"errors"
	"fmt"
)

// Sound is a single ARPAbet phoneme, without stress markers.
type Sound string

const (
	AA Sound = "AA"
	AE Sound = "AE"
	AH Sound = "AH"
	AO Sound = "AO"
	AW Sound = "AW"
	AY Sound = "AY"
	B  Sound = "B"
	CH Sound = "CH"
	D  Sound = "D"
	DH Sound = "DH"
	EH Sound = "EH"
	ER Sound = "ER"
	EY Sound = "EY"
	F  Sound = "F"
	G  Sound = "G"
	HH Sound = "HH"
	IH Sound = "IH"
	IY Sound = "IY"
	JH Sound = "JH"
	K  Sound = "K"
	L  Sound = "L"
	M  Sound = "M"
	N  Sound = "N"
	NG Sound = "NG"
	OW Sound = "OW"
	OY Sound = "OY"
	P  Sound = "P"
	R  Sound = "R"
	S  Sound = "S"
	SH Sound = "SH"
	T  Sound = "T"
	TH Sound = "TH"
	UH Sound = "UH"
	UM Sound = "UM"
	UW Sound = "UW"
	V  Sound = "V"
	W  Sound = "W"
	Y  Sound = "Y"
	Z  Sound = "Z"
	ZH Sound = "ZH"
)

// ErrInvalidSound is returned for a symbol outside the phoneme set.
var ErrInvalidSound = errors.New("invalid sound")

var allSounds = []Sound{
	AA, AE, AH, AO, AW, AY,
	B, CH, D, DH,
	EH, ER, EY,
	F, G, HH,
	IH, IY, JH, K, L, M, N, NG,
	OW, OY, P, R, S, SH, T, TH,
	UH, UM, UW, V, W, Y, Z, ZH,
}

var soundSet = func() map[Sound]struct{} {
	m := make(map[Sound]struct{}, len(allSounds))
	for _, s := range allSounds {
		m[s] = struct{}{}
	}
	return m
}()

// AllSounds returns the complete phoneme set.
func AllSounds() []Sound {
	return append([]Sound(nil), allSounds...)
}

// ParseSound validates an upper-case ARPAbet symbol.
func ParseSound(s string) (Sound, error) {
	if _, ok := soundSet[Sound(s)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSound, s)
	}
	return Sound(s), nil
}
