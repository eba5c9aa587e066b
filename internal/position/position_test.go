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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mfenwick/chesswood/internal/types"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.Castling())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, StartFen, p.Fen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := NewFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestInvalidFen(t *testing.T) {
	_, err := NewFen("not a fen")
	assert.Error(t, err)
}

func TestStartingMoveCount(t *testing.T) {
	p := New()
	assert.Len(t, p.PseudoLegalMoves(), 20)
	for _, m := range p.PseudoLegalMoves() {
		assert.NotEqual(t, m.From(), m.To())
		assert.True(t, m.From().IsValid())
		assert.True(t, m.To().IsValid())
	}
}

func TestDoUndoRoundTrip(t *testing.T) {
	p := New()
	before := p.Fen()

	m := New(SqE2, SqE4, Pawn)
	require.NoError(t, p.DoMove(m))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", p.Fen())

	require.NoError(t, p.UndoMove())
	assert.Equal(t, before, p.Fen())
}

func TestUndoEmptyHistoryFails(t *testing.T) {
	p := New()
	assert.Error(t, p.UndoMove())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	m := NewEnPassant(SqE5, SqD6)
	require.NoError(t, p.DoMove(m))
	assert.Equal(t, PieceNone, p.Board().PieceAt(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.Board().PieceAt(SqD6))

	require.NoError(t, p.UndoMove())
	assert.Equal(t, MakePiece(Black, Pawn), p.Board().PieceAt(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.Board().PieceAt(SqE5))
}

func TestCastlingKingside(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := NewCastling(SqE1, SqG1)
	require.NoError(t, p.DoMove(m))
	assert.Equal(t, MakePiece(White, King), p.Board().PieceAt(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.Board().PieceAt(SqF1))
	assert.False(t, p.Castling().Has(CastlingWhite))
	assert.True(t, p.Castling().Has(CastlingBlack))
}

func TestCastlingRejectsBadDestination(t *testing.T) {
	p := New()
	m := Move(NewCastling(SqE1, SqE2))
	err := p.DoMove(m)
	assert.Error(t, err)
}

func TestPromotion(t *testing.T) {
	p, err := NewFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	m := NewPromotion(SqA7, SqA8, Queen)
	require.NoError(t, p.DoMove(m))
	assert.Equal(t, MakePiece(White, Queen), p.Board().PieceAt(SqA8))

	require.NoError(t, p.UndoMove())
	assert.Equal(t, MakePiece(White, Pawn), p.Board().PieceAt(SqA7))
}

func TestFoolsMateCheckmate(t *testing.T) {
	p, err := NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, p.InCheck())
	assert.True(t, p.IsCheckmate())
	assert.False(t, p.IsStalemate())
}

func TestStalemate(t *testing.T) {
	p, err := NewFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.InCheck())
	assert.True(t, p.IsStalemate())
	assert.False(t, p.IsCheckmate())
}

func TestCastlingOutOfCheckIsIllegal(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	m := NewCastling(SqE1, SqG1)
	assert.False(t, p.IsLegalMove(m))
}

func TestMovingIntoCheckIsIllegal(t *testing.T) {
	p, err := NewFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	// d2 shares rank 2 with the rook on e2: still attacked after the move.
	staysInCheck := New(SqE1, SqD2, King)
	assert.False(t, p.IsLegalMove(staysInCheck))
	// d1 is off both the rook's file and rank: escapes check.
	escapesCheck := New(SqE1, SqD1, King)
	assert.True(t, p.IsLegalMove(escapesCheck))
}
