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

// Package uci speaks the Universal Chess Interface over line-based
// standard input/output: read a command, act on the engine's position
// and search, write a response, read the next command. The loop is
// single-threaded and synchronous - a "go" line blocks until that
// search has produced its bestmove line, matching the engine core's own
// scheduling model.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/op/go-logging"

	"github.com/mfenwick/chesswood/internal/config"
	lg "github.com/mfenwick/chesswood/internal/logging"
	"github.com/mfenwick/chesswood/internal/position"
	"github.com/mfenwick/chesswood/internal/search"

	. "github.com/mfenwick/chesswood/internal/types"
)

const (
	engineName   = "Chesswood"
	engineAuthor = "the chesswood contributors"
)

// Engine holds everything one UCI session needs: the position under
// discussion, where responses go, and the log that records the protocol
// transcript.
type Engine struct {
	pos   *position.Position
	out   io.Writer
	log   *logging.Logger
	debug bool
}

// New builds an Engine that writes UCI responses to out. config.Setup is
// called here so a caller only needs to construct an Engine to get
// defaults (or a config file's overrides) wired in.
func New(out io.Writer) *Engine {
	config.Setup()
	return &Engine{
		pos: position.New(),
		out: out,
		log: lg.GetUciLog(),
	}
}

// Run reads whitespace-delimited UCI commands from in, one per line,
// until "quit" or end of input, dispatching each to Handle. It returns
// nil on a clean "quit" or EOF, and a non-zero-worthy error on an I/O
// failure reading the input.
func (e *Engine) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		e.log.Debugf("> %s", line)
		quit := e.Handle(ctx, line)
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Handle processes one command line and reports whether the session
// should end ("quit" was received).
func (e *Engine) Handle(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "uci":
		e.handleUci()
	case "isready":
		e.send("readyok")
	case "ucinewgame":
		e.pos = position.New()
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(ctx, fields[1:])
	case "stop":
		// The search already ran to completion inline before this line
		// could be read, so there is nothing in flight to terminate.
	case "quit":
		return true
	case "debug":
		e.handleDebug(fields[1:])
	case "setoption":
		// Accepted for protocol compliance; there is no tunable search
		// or eval option to apply.
	case "register":
		// Accepted for protocol compliance; registration is not required.
	default:
		e.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (e *Engine) handleUci() {
	e.send(fmt.Sprintf("id name %s", engineName))
	e.send(fmt.Sprintf("id author %s", engineAuthor))
	e.send("uciok")
}

func (e *Engine) handleDebug(args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "on":
		e.debug = true
		e.send("info string debug on")
	case "off":
		e.debug = false
		e.send("info string debug off")
	}
}

// handlePosition implements "position startpos|fen [moves m1 m2 …]".
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		e.log.Warning("position command missing startpos/fen")
		return
	}

	var rest []string
	switch args[0] {
	case "startpos":
		e.pos = position.New()
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			e.log.Warningf("position fen: not enough fields in %v", args)
			return
		}
		fen := strings.Join(args[1:7], " ")
		p, err := position.NewFen(fen)
		if err != nil {
			e.log.Warningf("position fen %q: %v", fen, err)
			return
		}
		e.pos = p
		rest = args[7:]
	default:
		e.log.Warningf("position: unknown position type %q", args[0])
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			m, err := e.parseMove(uciMove)
			if err != nil {
				e.log.Warningf("position moves: %v", err)
				return
			}
			if err := e.pos.DoMove(m); err != nil {
				e.log.Warningf("position moves: %v", err)
				return
			}
		}
	}
}

// parseMove resolves a pure-coordinate UCI move string against the
// position's legal moves, so an illegal or malformed string is rejected
// rather than silently constructed.
func (e *Engine) parseMove(uciMove string) (Move, error) {
	if len(uciMove) < 4 || len(uciMove) > 5 {
		return MoveNone, fmt.Errorf("malformed move %q", uciMove)
	}
	from := MakeSquare(uciMove[0:2])
	to := MakeSquare(uciMove[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, fmt.Errorf("malformed move %q", uciMove)
	}
	var promo PieceType
	if len(uciMove) == 5 {
		promo = PieceTypeFromChar(strings.ToUpper(uciMove[4:5]))
		if promo == PtNone {
			return MoveNone, fmt.Errorf("malformed promotion in %q", uciMove)
		}
	}

	for _, m := range e.pos.PseudoLegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotionPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != PtNone {
			continue
		}
		if !e.pos.IsLegalMove(m) {
			continue
		}
		return m, nil
	}
	return MoveNone, fmt.Errorf("no legal move matches %q", uciMove)
}

// handleGo implements "go [depth D] [movetime MS] [nodes N] [infinite]"
// and runs the search inline, exactly as spec's synchronous scheduling
// model requires: the bestmove/info lines are written before the next
// input line is read.
func (e *Engine) handleGo(ctx context.Context, args []string) {
	depth := config.Settings.Search.DefaultDepth
	moveTimeMs := config.Settings.Search.DefaultMoveTimeMs
	useMoveTime := false
	var nodesLimit uint64

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					depth = d
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if ms, err := strconv.ParseInt(args[i+1], 10, 64); err == nil {
					moveTimeMs = ms
					useMoveTime = true
				}
				i++
			}
		case "nodes":
			if i+1 < len(args) {
				if n, err := strconv.ParseUint(args[i+1], 10, 64); err == nil {
					nodesLimit = n
				}
				i++
			}
		case "infinite":
			useMoveTime = false
			nodesLimit = 0
		}
	}

	var timeLimit time.Duration
	if useMoveTime {
		timeLimit = time.Duration(moveTimeMs) * time.Millisecond
	}

	result, err := search.IterativeDeepening(ctx, e.pos, depth, timeLimit, nodesLimit)
	if err != nil {
		e.log.Warningf("search: %v", err)
	}

	e.send(fmt.Sprintf("bestmove %s", result.BestMove.String()))
	e.send(fmt.Sprintf("info depth %d score cp %d nodes %d", result.Depth, int(result.Score), result.Stats.NodesSearched))

	if e.debug {
		e.send(fmt.Sprintf("info string %s", spew.Sdump(result.Stats)))
	}
}

func (e *Engine) send(line string) {
	e.log.Debugf("< %s", line)
	_, _ = fmt.Fprintln(e.out, line)
}
