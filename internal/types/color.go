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

// Color identifies the side to move or the owner of a piece.
type Color uint8

// White moves first and advances toward rank 8; Black advances toward rank 1.
const (
	White Color = iota
	Black
	ColorLength
)

var colorDirection = [2]int{1, -1}
var colorStr = [2]string{"w", "b"}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// Direction returns +1 for White (ranks increase) and -1 for Black.
func (c Color) Direction() int {
	return colorDirection[c]
}

// MoveDirection returns the Direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnDoubleRank returns the rank a pawn of this color starts on.
func (c Color) PawnDoubleRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// String returns "w" or "b".
func (c Color) String() string {
	return colorStr[c]
}
