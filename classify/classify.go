// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Category is the bucket a single token is sorted into
type Category int

const (
	Dropped Category = iota
	Number
	Alphabetic
	Special
)

func (c Category) String() string {
	switch c {
	case Number:
		return "number"
	case Alphabetic:
		return "alphabetic"
	case Special:
		return "special"
	default:
		return "dropped"
	}
}

// SpecialCharacters is the set of single characters accepted as Special
const SpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Decimal literal only: no hex, no underscores, no Inf/NaN, no whitespace.
var numericLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Result holds the classification of one input sequence.
// Slices are never nil so they encode as [] rather than null.
type Result struct {
	Numbers           []string
	EvenNumbers       []string
	OddNumbers        []string
	Alphabets         []string
	SpecialCharacters []string
	Dropped           []string
	Sum               string
	ConcatString      string
}

// Categorize returns the category of a single token.
// Numeric wins over alphabetic, alphabetic over special.
func Categorize(token string) Category {
	switch {
	case IsNumber(token):
		return Number
	case IsAlphabet(token):
		return Alphabetic
	case IsSpecialChar(token):
		return Special
	default:
		return Dropped
	}
}

// IsNumber reports whether the whole token is a finite decimal literal
func IsNumber(token string) bool {
	if !numericLiteral.MatchString(token) {
		return false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsAlphabet reports whether token is exactly one ASCII letter
func IsAlphabet(token string) bool {
	if len(token) != 1 {
		return false
	}
	c := token[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsSpecialChar reports whether token is exactly one character from SpecialCharacters
func IsSpecialChar(token string) bool {
	return len(token) == 1 && strings.IndexByte(SpecialCharacters, token[0]) >= 0
}

// Integer truncates a numeric token toward zero with arbitrary precision.
// The second return value is false for tokens IsNumber rejects.
func Integer(token string) (*big.Int, bool) {
	if !IsNumber(token) {
		return nil, false
	}
	// |x| < 1 truncates to zero; skips big.Rat work on tokens like "1e-999999999"
	if f, _ := strconv.ParseFloat(token, 64); math.Abs(f) < 1 {
		return new(big.Int), true
	}
	r, ok := new(big.Rat).SetString(token)
	if !ok {
		return nil, false
	}
	return new(big.Int).Quo(r.Num(), r.Denom()), true
}

// Tokens classifies tokens and derives the even/odd partition, the sum
// and the concatenated string. It never fails and never mutates tokens.
func Tokens(tokens []string) Result {
	res := Result{
		Numbers:           []string{},
		EvenNumbers:       []string{},
		OddNumbers:        []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Dropped:           []string{},
	}

	sum := new(big.Int)
	for _, token := range tokens {
		switch Categorize(token) {
		case Number:
			n, _ := Integer(token)
			res.Numbers = append(res.Numbers, token)
			if n.Bit(0) == 0 {
				res.EvenNumbers = append(res.EvenNumbers, token)
			} else {
				res.OddNumbers = append(res.OddNumbers, token)
			}
			sum.Add(sum, n)
		case Alphabetic:
			res.Alphabets = append(res.Alphabets, strings.ToUpper(token))
		case Special:
			res.SpecialCharacters = append(res.SpecialCharacters, token)
		default:
			res.Dropped = append(res.Dropped, token)
		}
	}

	res.Sum = sum.String()
	res.ConcatString = AlternatingConcat(res.Alphabets)
	return res
}

// AlternatingConcat reverses the letters of alphabets and re-cases them
// upper, lower, upper, ... starting at index 0
func AlternatingConcat(alphabets []string) string {
	var letters []byte
	for _, a := range alphabets {
		letters = append(letters, a...)
	}

	var b strings.Builder
	b.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[len(letters)-1-i]
		if i%2 == 0 {
			b.WriteString(strings.ToUpper(string(c)))
		} else {
			b.WriteString(strings.ToLower(string(c)))
		}
	}
	return b.String()
}
