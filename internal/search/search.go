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

// Package search implements negamax alpha-beta search with quiescence and
// iterative deepening on top of internal/position and internal/evaluator.
// The core recursion is a plain, single-threaded CPU loop, matching the
// source engine's design; iterative deepening alone is wrapped in a
// cancellable context, which also carries the "movetime" deadline.
package search

import (
	"context"
	"sort"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/mfenwick/chesswood/internal/evaluator"
	lg "github.com/mfenwick/chesswood/internal/logging"
	"github.com/mfenwick/chesswood/internal/position"

	. "github.com/mfenwick/chesswood/internal/types"
)

var slog *logging.Logger

func init() {
	slog = lg.GetSearchLog()
}

// mateScore is the base magnitude used for checkmate scores.
const mateScore = Value(-20000)

// mateThreshold is the magnitude above which a score is treated as "found
// a mate" for iterative deepening's early-exit and for UCI reporting.
const mateThreshold = Value(10000)

// Params bounds a single search call: search runs to Depth plies, or less
// if TimeLimit or NodesLimit (zero means unbounded) is hit first.
type Params struct {
	Depth      int
	TimeLimit  time.Duration
	NodesLimit uint64
}

// Stats accumulates counters over one Search call.
type Stats struct {
	NodesSearched  uint64
	QNodesSearched uint64
	Cutoffs        uint64
	Depth          int
}

// Result is what a completed (or cancelled mid-flight) search returns.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	Stats    Stats
}

// searchState carries the mutable counters and the deadline through one
// recursive search call; it is not safe for concurrent use.
type searchState struct {
	stats    Stats
	deadline time.Time
	nodes    uint64
}

func (s *searchState) timedOut() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// Search runs one fixed-depth search of p and returns the best root move
// found. ctx is polled once per root move and once per interior node;
// cancellation returns whatever the search has found so far.
func Search(ctx context.Context, p *position.Position, params Params) Result {
	slog.Debugf("Depth %-2.d start: %s", params.Depth, p.Fen())
	defer slog.Debugf("Depth %-2.d end", params.Depth)

	st := &searchState{stats: Stats{Depth: params.Depth}}
	if params.TimeLimit > 0 {
		st.deadline = time.Now().Add(params.TimeLimit)
	}

	if p.IsGameOver() {
		return Result{BestMove: MoveNone, Score: gameOverScore(p), Depth: 0, Stats: st.stats}
	}

	alpha := -ValueInfinite + 1
	beta := ValueInfinite - 1

	bestMove := MoveNone
	bestScore := ValueNA

	for _, m := range orderedMoves(p, p.PseudoLegalMoves()) {
		select {
		case <-ctx.Done():
			return Result{BestMove: bestMove, Score: bestScore, Depth: params.Depth, Stats: st.stats}
		default:
		}
		if !p.IsLegalMove(m) {
			continue
		}

		_ = p.DoMove(m)
		st.stats.NodesSearched++
		st.nodes++
		score := -alphaBeta(ctx, p, st, params.Depth-1, -beta, -alpha)
		_ = p.UndoMove()

		if score > bestScore || bestMove == MoveNone {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if params.NodesLimit > 0 && st.nodes >= params.NodesLimit {
			break
		}
		if st.timedOut() {
			break
		}
	}

	return Result{BestMove: bestMove, Score: bestScore, Depth: params.Depth, Stats: st.stats}
}

// alphaBeta is the negamax interior-node search: it returns a score in
// [alpha, beta] from the perspective of the side to move at p.
func alphaBeta(ctx context.Context, p *position.Position, st *searchState, depth int, alpha, beta Value) Value {
	slog.Debugf("Depth %-2.d a:%-6.d b:%-6.d start", depth, alpha, beta)
	defer slog.Debugf("Depth %-2.d a:%-6.d b:%-6.d end", depth, alpha, beta)

	select {
	case <-ctx.Done():
		return alpha
	default:
	}
	if st.timedOut() {
		return alpha
	}

	if depth <= 0 {
		return quiescence(ctx, p, st, alpha, beta)
	}
	if p.IsGameOver() {
		return gameOverScore(p)
	}

	for _, m := range orderedMoves(p, p.PseudoLegalMoves()) {
		if !p.IsLegalMove(m) {
			continue
		}

		_ = p.DoMove(m)
		st.stats.NodesSearched++
		st.nodes++
		score := -alphaBeta(ctx, p, st, depth-1, -beta, -alpha)
		_ = p.UndoMove()

		if score >= beta {
			st.stats.Cutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// quiescence extends the search along capture sequences to damp the
// horizon effect: only captures (including en passant) are considered
// once the static evaluation has been used as a stand-pat lower bound.
func quiescence(ctx context.Context, p *position.Position, st *searchState, alpha, beta Value) Value {
	slog.Debugf("QSearch a:%-6.d b:%-6.d start", alpha, beta)
	defer slog.Debugf("QSearch a:%-6.d b:%-6.d end", alpha, beta)

	select {
	case <-ctx.Done():
		return alpha
	default:
	}

	st.stats.QNodesSearched++
	standPat := evaluator.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, m := range orderedCaptures(p, p.PseudoLegalMoves()) {
		if !p.IsLegalMove(m) {
			continue
		}

		_ = p.DoMove(m)
		st.stats.NodesSearched++
		st.nodes++
		score := -quiescence(ctx, p, st, -beta, -alpha)
		_ = p.UndoMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// gameOverScore scores a position with no legal move: a checkmate favors
// a longer survival for the mated side (equivalently a faster mate for the
// mating side, since scores are negated on the way back up the recursion);
// stalemate and every other draw score zero.
func gameOverScore(p *position.Position) Value {
	if p.IsCheckmate() {
		return mateScore + Value(p.FullmoveNumber())
	}
	return ValueDraw
}

// orderedMoves returns moves sorted by descending heuristic score,
// stable so tied moves keep generate_moves' deterministic emission order.
func orderedMoves(p *position.Position, moves MoveList) MoveList {
	ordered := make(MoveList, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return moveScore(p, ordered[i]) > moveScore(p, ordered[j])
	})
	return ordered
}

// orderedCaptures filters moves down to captures (including en passant)
// and sorts them by descending capture score.
func orderedCaptures(p *position.Position, moves MoveList) MoveList {
	captures := make(MoveList, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture(p.Board()) || m.IsEnPassant() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return captureScore(p, captures[i]) > captureScore(p, captures[j])
	})
	return captures
}

var promotionValue = map[PieceType]Value{
	Queen:  900,
	Rook:   500,
	Bishop: 300,
	Knight: 300,
}

// moveScore is the plain move-ordering key: MVV-LVA for captures, plus the
// promotion piece's value for promotions, zero for quiet moves.
func moveScore(p *position.Position, m Move) Value {
	var score Value
	if m.IsCapture(p.Board()) || m.IsEnPassant() {
		score += captureScore(p, m)
	}
	if m.IsPromotion() {
		score += promotionValue[m.PromotionPiece()]
	}
	return score
}

// captureScore is MVV-LVA: victimValue*10 - attackerValue. An en-passant
// capture's victim is always a pawn even though the target square is empty.
func captureScore(p *position.Position, m Move) Value {
	attacker := p.Board().PieceAt(m.From()).TypeOf()
	if m.IsEnPassant() {
		return Pawn.ValueOf()*10 - attacker.ValueOf()
	}
	victim := p.Board().PieceAt(m.To()).TypeOf()
	return victim.ValueOf()*10 - attacker.ValueOf()
}

// IterativeDeepening runs Search at depth 1..maxDepth, keeping the latest
// completed result, and returns early once a mate score is found or the
// context (which also carries the movetime deadline) is cancelled. A depth
// cut short by cancellation is kept only when no earlier depth completed.
// The loop runs in an errgroup goroutine; IterativeDeepening waits for it
// before returning.
func IterativeDeepening(ctx context.Context, p *position.Position, maxDepth int, timeLimit time.Duration, nodesLimit uint64) (Result, error) {
	if timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeLimit)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	var best Result

	g.Go(func() error {
		for depth := 1; depth <= maxDepth; depth++ {
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			result := Search(gctx, p, Params{Depth: depth, TimeLimit: timeLimit, NodesLimit: nodesLimit})
			if gctx.Err() != nil && best.BestMove != MoveNone {
				return nil
			}
			best = result
			if abs(result.Score) > mateThreshold {
				break
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return best, err
	}
	return best, nil
}

func abs(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}
