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

// Package position implements the chess position state machine: the board
// plus side to move, castling rights, en-passant target, move clocks, and
// the make/undo pair that mutates them in place.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfenwick/chesswood/internal/attacks"
	"github.com/mfenwick/chesswood/internal/movegen"

	. "github.com/mfenwick/chesswood/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the make/undo stack. It is sized generously above any
// realistic search depth or game length; DoMove reports an error rather
// than overflow it.
const maxHistory = 1024

// positionState is the snapshot pushed before every DoMove and popped by
// UndoMove. Side to move and the fullmove counter are not snapshotted -
// they're reconstructed by inverting the make rules on undo.
type positionState struct {
	board         Board
	castling      CastlingRights
	epSquare      Square
	halfmoveClock int
}

// Position is a mutable chess position. The zero value is not usable;
// construct with New or NewFen.
type Position struct {
	board          Board
	sideToMove     Color
	castling       CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	historyLen int
	history    [maxHistory]positionState
}

// New returns the standard starting position.
func New() *Position {
	p, err := NewFen(StartFen)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

// NewFen parses fen into a fresh Position.
func NewFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Board returns the position's board. Callers must not mutate it directly;
// go through DoMove/UndoMove instead.
func (p *Position) Board() *Board {
	return &p.board
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// EpSquare returns the en-passant target square, or SqNone if there is none.
func (p *Position) EpSquare() Square {
	return p.epSquare
}

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current full-move counter, starting at 1.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// PseudoLegalMoves generates every pseudo-legal move for the side to move.
func (p *Position) PseudoLegalMoves() MoveList {
	return movegen.GeneratePseudoLegal(&p.board, p.sideToMove, p.castling, p.epSquare)
}

// DoMove applies m to the position, pushing the prior state onto the undo
// history. It does not check legality - a move that leaves the mover's own
// king in check is applied anyway; use IsLegalMove before calling DoMove to
// filter pseudo-legal moves, or check InCheck afterwards. DoMove only fails
// for a malformed castling move or a full history stack.
func (p *Position) DoMove(m Move) error {
	if p.historyLen >= maxHistory {
		return &InvalidMoveError{Reason: "history stack exhausted"}
	}
	from, to := m.From(), m.To()
	if m.IsCastling() {
		if to != SqC1 && to != SqG1 && to != SqC8 && to != SqG8 {
			return &InvalidMoveError{Reason: fmt.Sprintf("castling destination %s is not c1, g1, c8, or g8", to)}
		}
	}

	p.history[p.historyLen] = positionState{
		board:         p.board,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
	}
	p.historyLen++

	us := p.sideToMove
	isCapture := m.IsCapture(&p.board)
	p.epSquare = SqNone

	switch {
	case m.IsCastling():
		p.board.MovePiece(from, to)
		switch to {
		case SqG1:
			p.board.MovePiece(SqH1, SqF1)
		case SqC1:
			p.board.MovePiece(SqA1, SqD1)
		case SqG8:
			p.board.MovePiece(SqH8, SqF8)
		case SqC8:
			p.board.MovePiece(SqA8, SqD8)
		}
	case m.IsEnPassant():
		p.board.MovePiece(from, to)
		capSq := SquareOf(to.FileOf(), from.RankOf())
		p.board.RemovePiece(capSq)
	case m.IsPromotion():
		p.board.RemovePiece(from)
		if isCapture {
			p.board.RemovePiece(to)
		}
		p.board.PutPiece(MakePiece(us, m.PromotionPiece()), to)
	default:
		if isCapture {
			p.board.RemovePiece(to)
		}
		p.board.MovePiece(from, to)
		if m.PieceType() == Pawn {
			delta := int(to.RankOf()) - int(from.RankOf())
			if delta == 2 || delta == -2 {
				p.epSquare = SquareOf(from.FileOf(), Rank((int(from.RankOf())+int(to.RankOf()))/2))
			}
		}
	}

	p.castling.Remove(CastlingRightsLost(from))
	p.castling.Remove(CastlingRightsLost(to))

	if m.PieceType() == Pawn || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()

	return nil
}

// UndoMove reverses the most recent DoMove. It fails if the history is
// empty.
func (p *Position) UndoMove() error {
	if p.historyLen == 0 {
		return &InvalidMoveError{Reason: "no move to undo"}
	}
	p.historyLen--
	st := p.history[p.historyLen]
	p.board = st.board
	p.castling = st.castling
	p.epSquare = st.epSquare
	p.halfmoveClock = st.halfmoveClock

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}
	return nil
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if sq == SqNone {
		return false
	}
	occ := p.board.OccupiedAll()

	if attacks.PawnAttacks(by.Flip(), sq)&p.board.PiecesOf(by, Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.board.PiecesOf(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.board.PiecesOf(by, King) != 0 {
		return true
	}
	bishopsQueens := p.board.PiecesOf(by, Bishop) | p.board.PiecesOf(by, Queen)
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.board.PiecesOf(by, Rook) | p.board.PiecesOf(by, Queen)
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.board.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// IsLegalMove reports whether the pseudo-legal move m may actually be
// played: for castling, the king must not be in check, pass through an
// attacked square, or land on one; for every move, the mover's own king
// must not be left in check afterwards. Checked via a tentative
// apply-check-undo rather than a separate legality pass.
func (p *Position) IsLegalMove(m Move) bool {
	us := p.sideToMove
	if m.IsCastling() {
		if p.InCheck() {
			return false
		}
		between := attacks.Intermediate(m.From(), m.To())
		for between != 0 {
			sq := between.PopLsb()
			if p.IsAttacked(sq, us.Flip()) {
				return false
			}
		}
		if p.IsAttacked(m.To(), us.Flip()) {
			return false
		}
	}
	if err := p.DoMove(m); err != nil {
		return false
	}
	attacked := p.IsAttacked(p.board.KingSquare(us), us.Flip())
	_ = p.UndoMove()
	return !attacked
}

// HasLegalMove reports whether any pseudo-legal move survives IsLegalMove.
func (p *Position) HasLegalMove() bool {
	for _, m := range p.PseudoLegalMoves() {
		if p.IsLegalMove(m) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMove()
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMove()
}

// IsGameOver reports whether the side to move is checkmated or stalemated.
func (p *Position) IsGameOver() bool {
	return !p.HasLegalMove()
}

// Fen renders the position as a FEN string.
func (p *Position) Fen() string {
	var sb strings.Builder

	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board.PieceAt(SquareOf(f, Rank(r)))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castling.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}

// String returns the FEN representation.
func (p *Position) String() string {
	return p.Fen()
}

func (p *Position) setupFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return &InvalidFenError{Fen: fen, Reason: "need at least 4 fields: placement, side, castling, en-passant"}
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return &InvalidFenError{Fen: fen, Reason: err.Error()}
	}
	p.board = *board

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return &InvalidFenError{Fen: fen, Reason: "side to move must be 'w' or 'b'"}
	}

	p.castling = parseCastling(fields[2])

	if fields[3] == "-" {
		p.epSquare = SqNone
	} else {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return &InvalidFenError{Fen: fen, Reason: "invalid en-passant square " + fields[3]}
		}
		p.epSquare = sq
	}

	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			p.fullmoveNumber = n
		}
	}

	p.historyLen = 0
	return nil
}

func parsePlacement(field string) (*Board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("piece placement must have 8 ranks, got %d", len(ranks))
	}
	b := NewBoard()
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone || f > FileH {
				return nil, fmt.Errorf("invalid piece placement rank %q", rankStr)
			}
			b.PutPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileH+1 {
			return nil, fmt.Errorf("rank %q does not total 8 files", rankStr)
		}
	}
	return b, nil
}

func parseCastling(field string) CastlingRights {
	var c CastlingRights
	if field == "-" {
		return c
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			c.Add(CastlingWhiteOO)
		case 'Q':
			c.Add(CastlingWhiteOOO)
		case 'k':
			c.Add(CastlingBlackOO)
		case 'q':
			c.Add(CastlingBlackOOO)
		}
	}
	return c
}
