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

// Piece pairs a Color and a PieceType into a single small value, packed
// as (color<<3)|pieceType so it can index flat per-piece tables.
type Piece int8

//noinspection GoUnusedConst
const (
	// PieceNone packs color White with PieceType PtNone. Real pieces only
	// ever pack a PieceType in Pawn..King (0..5), so this never collides
	// with a packed White pawn (0) the way a bare 0 sentinel would.
	PieceNone   Piece = Piece(PtNone)
	PieceLength Piece = 16
)

// MakePiece packs a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3) + Piece(pt)
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p encodes a real piece (not PieceNone and a
// valid piece type).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// String returns the piece's FEN letter: upper-case for White, lower-case
// for Black ("P", "p", "N", "n", ...).
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return toLower(c)
	}
	return c
}

func toLower(s string) string {
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// PieceFromChar parses a FEN piece letter ("P", "n", ...) into a Piece.
// Returns PieceNone on no match.
func PieceFromChar(c string) Piece {
	upper := c
	color := White
	if len(c) == 1 && c[0] >= 'a' && c[0] <= 'z' {
		color = Black
		upper = string(c[0] - ('a' - 'A'))
	}
	pt := PieceTypeFromChar(upper)
	if pt == PtNone {
		return PieceNone
	}
	return MakePiece(color, pt)
}
