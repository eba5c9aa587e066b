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

// Package attacks holds the process-wide, read-only attack tables: knight
// and king leaps, pawn captures, and sliding bishop/rook/queen attacks.
// Everything here is populated once by init() and never mutated afterward.
package attacks

import (
	. "github.com/mfenwick/chesswood/internal/types"
)

var knightAttacks [SqLength]Bitboard
var kingAttacks [SqLength]Bitboard
var pawnAttacks [ColorLength][SqLength]Bitboard

// rayBetween[from][to] is the set of squares strictly between from and to
// on a shared rank, file, or diagonal; empty if they don't share one.
var rayBetween [SqLength][SqLength]Bitboard

var rookTable = make([]Bitboard, 0x19000)
var bishopTable = make([]Bitboard, 0x1480)

func init() {
	knightDeltas := []Direction{17, 15, 10, 6, -17, -15, -10, -6}
	kingDeltas := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for sq := SqA1; sq < SqNone; sq++ {
		for _, d := range kingDeltas {
			if to := sq.To(d); to != SqNone {
				kingAttacks[sq].PushSquare(to)
			}
		}
		for _, d := range knightDeltas {
			if to := knightStep(sq, d); to != SqNone {
				knightAttacks[sq].PushSquare(to)
			}
		}
		if sq.RankOf() != Rank8 {
			if to := sq.To(Northeast); to != SqNone {
				pawnAttacks[White][sq].PushSquare(to)
			}
			if to := sq.To(Northwest); to != SqNone {
				pawnAttacks[White][sq].PushSquare(to)
			}
		}
		if sq.RankOf() != Rank1 {
			if to := sq.To(Southeast); to != SqNone {
				pawnAttacks[Black][sq].PushSquare(to)
			}
			if to := sq.To(Southwest); to != SqNone {
				pawnAttacks[Black][sq].PushSquare(to)
			}
		}
	}

	initMagics(bishopTable, &bishopMagics, &bishopDirections)
	initMagics(rookTable, &rookMagics, &rookDirections)

	computeRayBetween()
}

// knightStep applies a two-axis knight delta, rejecting any jump whose file
// distance from sq is not exactly 1 or 2 (guards against wraparound the way
// Square.To's single-step guard does for king/pawn deltas).
func knightStep(sq Square, d Direction) Square {
	to := Square(int8(sq) + int8(d))
	if !to.IsValid() {
		return SqNone
	}
	df := int(sq.FileOf()) - int(to.FileOf())
	if df < 0 {
		df = -df
	}
	if df != 1 && df != 2 {
		return SqNone
	}
	return to
}

// computeRayBetween fills rayBetween by ray-walking each of the 8
// directions from every square; rayBetween[a][b] holds the squares strictly
// between a and b when they share a rank, file, or diagonal.
func computeRayBetween() {
	allDirs := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	for from := SqA1; from < SqNone; from++ {
		for _, d := range allDirs {
			var between Bitboard
			s := from
			for {
				next := s.To(d)
				if next == SqNone {
					break
				}
				s = next
				rayBetween[from][s] = between
				between.PushSquare(s)
			}
		}
	}
}

// KnightAttacks returns the knight-leap targets from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king-step targets from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal capture targets of a color c pawn on sq.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the diagonal sliding attacks from sq given the
// current occupancy, via magic-bitboard lookup.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// RookAttacks returns the orthogonal sliding attacks from sq given the
// current occupancy, via magic-bitboard lookup.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks returns the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Attacks returns the attack bitboard for piece type pt standing on sq
// given the current occupancy. Panics for Pawn, which has no
// occupancy-independent or color-independent attack set - use PawnAttacks.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	}
	panic("attacks.Attacks: no occupancy-independent attack set for " + pt.String())
}

// Intermediate returns the squares strictly between sq1 and sq2 when they
// share a rank, file, or diagonal; zero otherwise. Used for castling's
// empty-path check.
func Intermediate(sq1, sq2 Square) Bitboard {
	return rayBetween[sq1][sq2]
}
