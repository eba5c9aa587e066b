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
	"strconv"
	"strings"
)

// Board holds the 12 piece bitboards (2 colors x 6 piece types) plus the
// derived aggregates, and a mailbox array for O(1) piece-at-square lookup.
// Invariants: every set bit of occupied appears in exactly one of the 12
// piece boards; white & black == 0; the mailbox and the piece boards always
// agree.
type Board struct {
	pieces   [ColorLength][PtLength]Bitboard
	occupied [ColorLength]Bitboard
	mailbox  [SqLength]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for sq := SqA1; sq < SqNone; sq++ {
		b.mailbox[sq] = PieceNone
	}
	return b
}

// PieceAt returns the piece on sq, or PieceNone if it is empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.mailbox[sq]
}

// PiecesOf returns the bitboard of pieces of color c and type pt.
func (b *Board) PiecesOf(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// Occupied returns the union of all pieces of color c.
func (b *Board) Occupied(c Color) Bitboard {
	return b.occupied[c]
}

// OccupiedAll returns the union of all pieces of both colors.
func (b *Board) OccupiedAll() Bitboard {
	return b.occupied[White] | b.occupied[Black]
}

// Empty returns the complement of OccupiedAll.
func (b *Board) Empty() Bitboard {
	return ^b.OccupiedAll()
}

// PutPiece places p on sq. sq must be empty.
func (b *Board) PutPiece(p Piece, sq Square) {
	b.mailbox[sq] = p
	c := p.ColorOf()
	pt := p.TypeOf()
	b.pieces[c][pt].PushSquare(sq)
	b.occupied[c].PushSquare(sq)
}

// RemovePiece removes and returns the piece on sq. sq must be occupied.
func (b *Board) RemovePiece(sq Square) Piece {
	p := b.mailbox[sq]
	b.mailbox[sq] = PieceNone
	c := p.ColorOf()
	pt := p.TypeOf()
	b.pieces[c][pt].PopSquare(sq)
	b.occupied[c].PopSquare(sq)
	return p
}

// MovePiece moves whatever piece sits on from to to (to must be empty);
// returns the piece that was moved.
func (b *Board) MovePiece(from, to Square) Piece {
	p := b.RemovePiece(from)
	b.PutPiece(p, to)
	return p
}

// KingSquare returns the square of color c's king, or SqNone if absent.
func (b *Board) KingSquare(c Color) Square {
	bb := b.pieces[c][King]
	if bb == 0 {
		return SqNone
	}
	return bb.Lsb()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	n := *b
	return &n
}

// String renders the board as an 8x8 ASCII diagram, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			p := b.PieceAt(SquareOf(f, Rank(r)))
			sb.WriteString(p.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
