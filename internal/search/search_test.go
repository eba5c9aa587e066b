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

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfenwick/chesswood/internal/position"

	. "github.com/mfenwick/chesswood/internal/types"
)

func TestSearchStartingPosition(t *testing.T) {
	p := position.New()
	result := Search(context.Background(), p, Params{Depth: 3})
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Less(t, int(result.Score), 1000)
	assert.Greater(t, int(result.Score), -1000)
	assert.Greater(t, result.Stats.NodesSearched, uint64(0))
}

func TestSearchFoolsMateIsFoundForBlack(t *testing.T) {
	p, err := position.NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	result := Search(context.Background(), p, Params{Depth: 1})
	assert.Less(t, int(result.Score), -10000)
}

func TestSearchReturnsMoveNoneWhenGameOver(t *testing.T) {
	p, err := position.NewFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	result := Search(context.Background(), p, Params{Depth: 3})
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, ValueDraw, result.Score)
}

func TestSearchDoesNotMutatePosition(t *testing.T) {
	p := position.New()
	before := p.Fen()
	Search(context.Background(), p, Params{Depth: 2})
	assert.Equal(t, before, p.Fen())
}

func TestIterativeDeepeningReturnsDeepeningResult(t *testing.T) {
	p := position.New()
	result, err := IterativeDeepening(context.Background(), p, 3, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Equal(t, 3, result.Depth)
}

func TestIterativeDeepeningStopsEarlyOnMate(t *testing.T) {
	p, err := position.NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	result, err := IterativeDeepening(context.Background(), p, 5, 0, 0)
	require.NoError(t, err)
	assert.Less(t, result.Depth, 5)
	assert.Less(t, int(result.Score), -10000)
}

func TestCaptureScoreIsMvvLva(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := New(SqE4, SqD5, Queen)
	assert.Equal(t, Pawn.ValueOf()*10-Queen.ValueOf(), captureScore(p, m))
}

func TestMoveOrderingPutsCapturesFirst(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	ordered := orderedMoves(p, p.PseudoLegalMoves())
	require.NotEmpty(t, ordered)
	assert.True(t, ordered[0].IsCapture(p.Board()))
}
