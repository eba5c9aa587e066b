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

package uci

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleUciHandshake(t *testing.T) {
	var out strings.Builder
	e := New(&out)

	quit := e.Handle(context.Background(), "uci")

	assert.False(t, quit)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "id name")
	assert.Equal(t, "uciok", lines[len(lines)-1])
}

func TestHandleIsReady(t *testing.T) {
	var out strings.Builder
	e := New(&out)

	e.Handle(context.Background(), "isready")

	assert.Equal(t, "readyok", strings.TrimSpace(out.String()))
}

func TestHandleQuit(t *testing.T) {
	e := New(&strings.Builder{})
	assert.True(t, e.Handle(context.Background(), "quit"))
	assert.False(t, e.Handle(context.Background(), "uci"))
}

func TestHandlePositionStartposWithMoves(t *testing.T) {
	var out strings.Builder
	e := New(&out)

	e.Handle(context.Background(), "position startpos moves e2e4 e7e5")

	assert.True(t, strings.HasPrefix(e.pos.Fen(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"))
}

func TestHandlePositionFen(t *testing.T) {
	var out strings.Builder
	e := New(&out)
	fen := "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1"

	e.Handle(context.Background(), "position fen "+fen)

	assert.Equal(t, fen, e.pos.Fen())
}

func TestHandlePositionRejectsIllegalMove(t *testing.T) {
	var out strings.Builder
	e := New(&out)
	before := e.pos.Fen()

	e.Handle(context.Background(), "position startpos moves e2e5")

	assert.Equal(t, before, e.pos.Fen())
}

func TestHandleGoReturnsBestMoveAndInfoLine(t *testing.T) {
	var out strings.Builder
	e := New(&out)

	e.Handle(context.Background(), "go depth 2")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "bestmove "))
	assert.True(t, strings.HasPrefix(lines[1], "info depth "))
}

func TestHandleGoOnStalemateReportsNoMoveSentinel(t *testing.T) {
	var out strings.Builder
	e := New(&out)
	e.Handle(context.Background(), "position fen k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	e.Handle(context.Background(), "go depth 2")

	assert.Contains(t, out.String(), "bestmove 0000")
}

func TestHandleDebugTogglesMode(t *testing.T) {
	var out strings.Builder
	e := New(&out)

	e.Handle(context.Background(), "debug on")
	assert.True(t, e.debug)

	e.Handle(context.Background(), "debug off")
	assert.False(t, e.debug)
}

func TestHandleUnknownCommandDoesNotPanic(t *testing.T) {
	e := New(&strings.Builder{})
	assert.NotPanics(t, func() {
		e.Handle(context.Background(), "frobnicate")
	})
}

func TestRunProcessesCommandsUntilQuit(t *testing.T) {
	var out strings.Builder
	e := New(&out)
	in := strings.NewReader("isready\nquit\n")

	err := e.Run(context.Background(), in)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "readyok")
}
