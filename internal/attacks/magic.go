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

package attacks

import (
	. "github.com/mfenwick/chesswood/internal/types"
)

// magic holds the precomputed sliding-attack lookup for one square: the
// relevant blocker mask, the magic multiplier, the shift, and the attack
// table it indexes into.
type magic struct {
	mask    Bitboard
	number  Bitboard
	attacks []Bitboard
	shift   uint
}

// index computes the table index for a given occupancy: one mask, one
// multiply, one shift.
func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

// slidingAttack walks each of the four given ray directions one square at a
// time from sq, stopping at (and including) the first occupied square. This
// is the O(14) reference implementation spec names as an acceptable
// sliding-attack strategy on its own; it also doubles as the mask/reference
// generator the magic search below verifies every candidate magic against.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64star generator Stockfish uses to search for magic
// numbers; public domain design by Sebastiano Vigna (2014).
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three rand64 draws together, biasing toward numbers with
// few set bits; such numbers make better magic-multiplier candidates.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

var rookMagics [SqLength]magic
var bishopMagics [SqLength]magic

// initMagics populates magics for every square by enumerating every blocker
// subset of the relevant-occupancy mask (Carry-Rippler:
// next = (prev - mask) & mask, until it returns to zero) and searching for a
// magic multiplier that maps each subset to a collision-free index, exactly
// as Stockfish's init_magics does. Magics are found deterministically (the
// PRNG seed is fixed per rank) rather than shipped as literal constants, but
// the effect is the same: by the time any query runs, the magic numbers are
// fixed and the tables are fully populated.
func initMagics(table []Bitboard, magics *[SqLength]magic, directions *[4]Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Mask | Rank8Mask) &^ sq.RankOf().Bb()) | ((FileAMask | FileHMask) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == SqA1 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.number = 0; ; {
				m.number = Bitboard(rng.sparseRand())
				if ((m.number * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}
