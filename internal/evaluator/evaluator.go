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

// Package evaluator scores a position in centipawns from the side to
// move's perspective: material balance plus piece-square bonuses, with a
// draw-by-insufficient-material check ahead of both.
package evaluator

import (
	"github.com/mfenwick/chesswood/internal/position"

	. "github.com/mfenwick/chesswood/internal/types"
)

// Evaluate scores p in centipawns, positive when the side to move stands
// better. It is a pure function of the position: no game-over detection,
// no search state.
func Evaluate(p *position.Position) Value {
	board := p.Board()
	if HasInsufficientMaterial(board) {
		return ValueDraw
	}

	var score Value
	for pt := Pawn; pt < PtNone; pt++ {
		white := board.PiecesOf(White, pt)
		black := board.PiecesOf(Black, pt)
		score += Value(white.PopCount()-black.PopCount()) * pt.ValueOf()

		wbb := white
		for wbb != 0 {
			score += pstTable[pt][wbb.PopLsb()]
		}
		bbb := black
		for bbb != 0 {
			score -= pstTable[pt][63-bbb.PopLsb()]
		}
	}

	if p.SideToMove() == Black {
		score = -score
	}
	return score
}

// HasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: bare kings, or one king against a lone king plus a
// single knight or bishop. Richer same-colored-bishop or two-minor-piece
// exceptions are not checked.
func HasInsufficientMaterial(board *Board) bool {
	total := board.OccupiedAll().PopCount()
	if total <= 2 {
		return true
	}
	if total != 3 {
		return false
	}
	pawns := board.PiecesOf(White, Pawn).PopCount() + board.PiecesOf(Black, Pawn).PopCount()
	rooks := board.PiecesOf(White, Rook).PopCount() + board.PiecesOf(Black, Rook).PopCount()
	queens := board.PiecesOf(White, Queen).PopCount() + board.PiecesOf(Black, Queen).PopCount()
	minors := board.PiecesOf(White, Knight).PopCount() + board.PiecesOf(Black, Knight).PopCount() +
		board.PiecesOf(White, Bishop).PopCount() + board.PiecesOf(Black, Bishop).PopCount()
	return pawns == 0 && rooks == 0 && queens == 0 && minors == 1
}
