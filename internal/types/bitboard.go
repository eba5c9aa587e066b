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

// Package types holds the small value types shared by every other package:
// bitboards, squares, pieces, moves, and the board they describe.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit mask with one bit per board square; bit i is square
// i, LSB is a1, MSB is h8.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File and rank masks, populated by init below.
var fileBb [8]Bitboard
var rankBb [8]Bitboard
var sqBb [SqLength]Bitboard

// File A/H and rank 1/8 masks, used to stop a directional shift from
// wrapping bits onto the opposite edge of the board.
const (
	FileAMask Bitboard = 0x0101010101010101
	FileHMask Bitboard = 0x8080808080808080
	Rank1Mask Bitboard = 0x00000000000000FF
	Rank8Mask Bitboard = 0xFF00000000000000
)

// LightSquares and DarkSquares partition the board by square color.
var LightSquares, DarkSquares Bitboard

func init() {
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = 0x0101010101010101 << uint(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = 0xFF << (8 * uint(r))
	}
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = 1 << uint(sq)
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			DarkSquares |= sqBb[sq]
		} else {
			LightSquares |= sqBb[sq]
		}
	}
}

// Bb returns the bitboard with exactly sq's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets sq's bit in b.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets sq's bit, mutating the receiver.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears sq's bit in b.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears sq's bit, mutating the receiver.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, or SqNone if b
// is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the index of the most significant set bit, or SqNone if b
// is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set bit and clears it in *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// masking off the squares a naive shift would wrap onto the opposite edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHMask) << 1
	case West:
		return (b &^ FileAMask) >> 1
	case Northeast:
		return (b &^ FileHMask) << 9
	case Southeast:
		return (b &^ FileHMask) >> 7
	case Southwest:
		return (b &^ FileAMask) >> 9
	case Northwest:
		return (b &^ FileAMask) << 7
	}
	return b
}

// String renders the bitboard as an 8x8 grid of '1'/'0', rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank(r))) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
