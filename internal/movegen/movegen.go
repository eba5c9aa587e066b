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

// Package movegen generates pseudo-legal moves from a board and the move
// state (side to move, castling rights, en-passant target). It never
// touches Position directly, so Position can depend on it without a cycle.
// Moves come out piece-type-major (pawn through king), source square
// ascending. Knight, slider and king-step targets come out in ascending
// square order; each pawn's moves come out as single push, double push,
// then the west-side and east-side captures (en passant among them), so
// pawn targets are not in ascending order. Castling moves follow all king
// steps, kingside before queenside.
// Legality (is the mover's own king left in check) is not checked here;
// that's Position.IsLegalMove's job.
package movegen

import (
	"github.com/mfenwick/chesswood/internal/attacks"

	. "github.com/mfenwick/chesswood/internal/types"
)

// GeneratePseudoLegal returns every pseudo-legal move for color us on
// board, given the current castling rights and en-passant target.
func GeneratePseudoLegal(board *Board, us Color, castling CastlingRights, ep Square) MoveList {
	moves := NewMoveList()
	generatePawnMoves(&moves, board, us, ep)
	generateKnightMoves(&moves, board, us)
	generateSlidingMoves(&moves, board, us, Bishop)
	generateSlidingMoves(&moves, board, us, Rook)
	generateSlidingMoves(&moves, board, us, Queen)
	generateKingMoves(&moves, board, us)
	generateCastling(&moves, board, us, castling)
	return moves
}

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

func addPawnTarget(moves *MoveList, from, to Square, promoRank Rank) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			*moves = append(*moves, NewPromotion(from, to, pt))
		}
		return
	}
	*moves = append(*moves, New(from, to, Pawn))
}

func pawnCaptureDirections(us Color) [2]Direction {
	if us == White {
		return [2]Direction{Northwest, Northeast}
	}
	return [2]Direction{Southwest, Southeast}
}

func generatePawnMoves(moves *MoveList, board *Board, us Color, ep Square) {
	pawns := board.PiecesOf(us, Pawn)
	occ := board.OccupiedAll()
	opp := board.Occupied(us.Flip())
	forward := us.MoveDirection()
	doubleRank := us.PawnDoubleRank()
	promoRank := us.PromotionRank()
	captureDirs := pawnCaptureDirections(us)

	for pawns != 0 {
		from := pawns.PopLsb()

		if to1 := from.To(forward); to1 != SqNone && !occ.Has(to1) {
			addPawnTarget(moves, from, to1, promoRank)
			if from.RankOf() == doubleRank {
				if to2 := to1.To(forward); to2 != SqNone && !occ.Has(to2) {
					*moves = append(*moves, New(from, to2, Pawn))
				}
			}
		}

		for _, d := range captureDirs {
			to := from.To(d)
			if to == SqNone {
				continue
			}
			if opp.Has(to) {
				addPawnTarget(moves, from, to, promoRank)
			} else if ep != SqNone && to == ep {
				*moves = append(*moves, NewEnPassant(from, to))
			}
		}
	}
}

func generateKnightMoves(moves *MoveList, board *Board, us Color) {
	knights := board.PiecesOf(us, Knight)
	own := board.Occupied(us)
	for knights != 0 {
		from := knights.PopLsb()
		targets := attacks.KnightAttacks(from) &^ own
		for targets != 0 {
			*moves = append(*moves, New(from, targets.PopLsb(), Knight))
		}
	}
}

func generateSlidingMoves(moves *MoveList, board *Board, us Color, pt PieceType) {
	pieces := board.PiecesOf(us, pt)
	own := board.Occupied(us)
	occ := board.OccupiedAll()
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.Attacks(pt, from, occ) &^ own
		for targets != 0 {
			*moves = append(*moves, New(from, targets.PopLsb(), pt))
		}
	}
}

func generateKingMoves(moves *MoveList, board *Board, us Color) {
	kingBb := board.PiecesOf(us, King)
	if kingBb == 0 {
		return
	}
	from := kingBb.Lsb()
	own := board.Occupied(us)
	targets := attacks.KingAttacks(from) &^ own
	for targets != 0 {
		*moves = append(*moves, New(from, targets.PopLsb(), King))
	}
}

// generateCastling emits a castling move whenever the corresponding right
// is still held and the squares between king and rook are empty. Whether
// the king is currently in check, or would pass through or land on an
// attacked square, is left to Position.IsLegalMove.
func generateCastling(moves *MoveList, board *Board, us Color, castling CastlingRights) {
	occ := board.OccupiedAll()
	if us == White {
		if castling.Has(CastlingWhiteOO) && occ&attacks.Intermediate(SqE1, SqH1) == 0 {
			*moves = append(*moves, NewCastling(SqE1, SqG1))
		}
		if castling.Has(CastlingWhiteOOO) && occ&attacks.Intermediate(SqE1, SqA1) == 0 {
			*moves = append(*moves, NewCastling(SqE1, SqC1))
		}
		return
	}
	if castling.Has(CastlingBlackOO) && occ&attacks.Intermediate(SqE8, SqH8) == 0 {
		*moves = append(*moves, NewCastling(SqE8, SqG8))
	}
	if castling.Has(CastlingBlackOOO) && occ&attacks.Intermediate(SqE8, SqA8) == 0 {
		*moves = append(*moves, NewCastling(SqE8, SqC8))
	}
}
