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

// PieceType is one of the six chess piece kinds, used as an array index
// throughout the engine.
type PieceType int8

//noinspection GoUnusedConst
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

var pieceTypeToChar = [PtLength]string{"P", "N", "B", "R", "Q", "K"}
var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
var pieceTypeValue = [PtLength]Value{100, 300, 300, 500, 900, 20000}

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PtNone
}

// Char returns the upper-case FEN letter for the piece type ("P".."K").
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeToChar[pt]
}

// String returns the full name of the piece type.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "None"
	}
	return pieceTypeToString[pt]
}

// ValueOf returns the material value of the piece type in centipawns.
func (pt PieceType) ValueOf() Value {
	if !pt.IsValid() {
		return 0
	}
	return pieceTypeValue[pt]
}

// PieceTypeFromChar parses an upper-case FEN piece letter into a PieceType.
// Returns PtNone on no match.
func PieceTypeFromChar(c string) PieceType {
	for pt := Pawn; pt < PtNone; pt++ {
		if pieceTypeToChar[pt] == c {
			return pt
		}
	}
	return PtNone
}
