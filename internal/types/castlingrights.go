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

// CastlingRights encodes which of the four castling moves are still
// available as a 4-bit set; equivalent to four independent booleans but
// cheap to copy, compare, and clear in bulk.
type CastlingRights uint8

//noinspection GoUnusedConst
const (
	CastlingNone CastlingRights = 0 // 0000

	CastlingWhiteOO  CastlingRights = 1                                  // 0001
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1               // 0010
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO // 0011

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2               // 0100
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1               // 1000
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO // 1100

	CastlingAny CastlingRights = CastlingWhite | CastlingBlack // 1111
)

// Has reports whether every bit set in rhs is also set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs && rhs != 0
}

// Remove clears the given castling right(s) from lhs.
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs &= ^rhs
	return *lhs
}

// Add sets the given castling right(s) on lhs.
func (lhs *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*lhs |= rhs
	return *lhs
}

// String returns the FEN castling-rights field ("KQkq", "Kq", or "-").
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteOO) {
		s += "K"
	}
	if lhs.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if lhs.Has(CastlingBlackOO) {
		s += "k"
	}
	if lhs.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// squareCastlingRights maps a square to the castling right(s) lost when a
// piece leaves or arrives on it (king/rook home squares only; zero elsewhere).
var squareCastlingRights = func() [SqLength]CastlingRights {
	var m [SqLength]CastlingRights
	m[SqE1] = CastlingWhite
	m[SqA1] = CastlingWhiteOOO
	m[SqH1] = CastlingWhiteOO
	m[SqE8] = CastlingBlack
	m[SqA8] = CastlingBlackOOO
	m[SqH8] = CastlingBlackOO
	return m
}()

// CastlingRightsLost returns which castling right(s) are invalidated when
// a piece leaves or arrives on sq.
func CastlingRightsLost(sq Square) CastlingRights {
	return squareCastlingRights[sq]
}
