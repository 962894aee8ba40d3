// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify sorts a flat sequence of string tokens into numbers,
alphabets and special characters.

# Classification

Each token is checked in order and lands in the first category it fits:

  - Number: the whole token is a finite decimal literal ("334", "-5", "3.2", "1e3")
  - Alphabetic: exactly one ASCII letter; stored uppercased
  - Special: exactly one character of SpecialCharacters

Anything else ("ABC", "", " 5", "##") is dropped. Multi-letter words are
dropped on purpose, existing clients depend on it.

# Derived Fields

Numbers are truncated toward zero with math/big before the even/odd
split and the sum, so "3.2" counts as 3 and very long literals sum
exactly:

	res := classify.Tokens([]string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"})
	// res.EvenNumbers  = ["2", "4", "92"]
	// res.OddNumbers   = ["5"]
	// res.Alphabets    = ["A", "Y", "B"]
	// res.Sum          = "103"
	// res.ConcatString = "ByA"

The concat string is the alphabets reversed, with alternating case
starting uppercase.
*/
package classify
