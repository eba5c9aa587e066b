//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"github.com/mfenwick/chesswood/internal/assert"
)

// Square is a board square index 0..63, a1=0 .. h8=63 (rank*8+file).
type Square int8

// SqA1..SqH8 name every square; SqNone is the sentinel for "no square".
//noinspection GoUnusedConst
const (
	SqA1, SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1 Square = iota, iota + 1, iota + 2, iota + 3, iota + 4, iota + 5, iota + 6, iota + 7
	SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2
	SqA3, SqB3, SqC3, SqD3, SqE3, SqF3, SqG3, SqH3
	SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4, SqH4
	SqA5, SqB5, SqC5, SqD5, SqE5, SqF5, SqG5, SqH5
	SqA6, SqB6, SqC6, SqD6, SqE6, SqF6, SqG6, SqH6
	SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7
	SqA8, SqB8, SqC8, SqD8, SqE8, SqF8, SqG8, SqH8
	SqNone
	SqLength = 64
)

// IsValid reports whether sq is a square on the board (0..63).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file (a..h) of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank (1..8) of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for a given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses an algebraic square name ("e4") into a Square.
// Returns SqNone for any malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// To returns the square one step away from sq in direction d, or SqNone
// if that step would run off the board (detected via the file-distance
// guard so a step never silently wraps to the opposite edge).
func (sq Square) To(d Direction) Square {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "Invalid square: %d", sq)
	}
	to := Square(int8(sq) + int8(d))
	if !to.IsValid() {
		return SqNone
	}
	if fileDistance(sq.FileOf(), to.FileOf()) > 1 {
		return SqNone
	}
	return to
}

func fileDistance(a, b File) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

// String returns the algebraic name of the square ("e4"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
