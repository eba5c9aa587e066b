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
	"strings"
)

// Move is a chess move packed into 32 bits.
//
//  BITMAP 32-bit
//  |-unused --------|--flags--|-promo-|--piece-|---to----|--from---|
//  3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ---------------------------------------------------------------
//                                                      1 1 1 1 1 1   from
//                                          1 1 1 1 1 1               to
//                                    1 1 1                           piece type
//                            1 1 1                                   promotion piece type
//                        1                                           promotion flag
//                      1                                             en passant flag
//                    1                                               castling flag
type Move uint32

// MoveNone is the zero value and represents "no move".
const MoveNone Move = 0

const (
	fromShift     uint = 0
	toShift       uint = 6
	pieceShift    uint = 12
	promoShift    uint = 16
	promoFlagBit  uint = 20
	epFlagBit     uint = 21
	castleFlagBit uint = 22

	squareMask Move = 0x3F
	pieceMask  Move = 0x7
	promoMask  Move = 0x7
)

// New creates a plain move.
func New(from, to Square, pt PieceType) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(pt)<<pieceShift
}

// NewPromotion creates a pawn promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return New(from, to, Pawn) | Move(promo)<<promoShift | 1<<promoFlagBit
}

// NewEnPassant creates an en-passant capture move.
func NewEnPassant(from, to Square) Move {
	return New(from, to, Pawn) | 1<<epFlagBit
}

// NewCastling creates a castling move; pt is King, from/to are the king's
// source and destination squares (c1, g1, c8, or g8).
func NewCastling(from, to Square) Move {
	return New(from, to, King) | 1<<castleFlagBit
}

// From returns the source square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// PieceType returns the type of the moving piece.
func (m Move) PieceType() PieceType {
	return PieceType((m >> pieceShift) & pieceMask)
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return (m>>promoFlagBit)&1 != 0
}

// PromotionPiece returns the promotion piece type. Only meaningful when
// IsPromotion is true.
func (m Move) PromotionPiece() PieceType {
	return PieceType((m >> promoShift) & promoMask)
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return (m>>epFlagBit)&1 != 0
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return (m>>castleFlagBit)&1 != 0
}

// IsCapture reports whether the move captures a piece: either the
// destination is occupied by the opposing color, or the move is en passant
// (whose destination square is empty but the move still removes a pawn).
func (m Move) IsCapture(board *Board) bool {
	if m.IsEnPassant() {
		return true
	}
	return board.PieceAt(m.To()) != PieceNone
}

// IsValid reports whether m has a plausible shape. MoveNone is not valid.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || m.From() == m.To() {
		return false
	}
	if !m.PieceType().IsValid() {
		return false
	}
	if m.IsPromotion() {
		pp := m.PromotionPiece()
		if pp != Knight && pp != Bishop && pp != Rook && pp != Queen {
			return false
		}
	}
	return true
}

// String returns the pure-coordinate UCI representation: from+to, with a
// trailing lower-case promotion letter when promoting. e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionPiece().Char()))
	}
	return b.String()
}
