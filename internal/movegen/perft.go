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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mfenwick/chesswood/internal/position"
)

var out = message.NewPrinter(language.English)

// Perft walks the full game tree to a fixed depth, counting leaf nodes and
// a handful of move-kind statistics. It exists to cross-check move
// generation against the well-known perft results published on
// chessprogramming.org, not to serve the engine at runtime.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64

	stopFlag bool
}

// NewPerft returns an empty Perft.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running StartPerft return early; useful when it was
// launched in a goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft runs perft on the position given by fen to the given depth,
// printing a summary and leaving the counters on the receiver.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.reset()
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}

	pos, err := position.NewFen(fen)
	if err != nil {
		out.Printf("invalid FEN: %s\n", err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	perft.Nodes = perft.search(depth, pos)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
}

func (perft *Perft) search(depth int, pos *position.Position) uint64 {
	if perft.stopFlag {
		return 0
	}
	var nodes uint64
	for _, m := range pos.PseudoLegalMoves() {
		if !pos.IsLegalMove(m) {
			continue
		}
		isCapture := m.IsCapture(pos.Board())
		isEnPassant := m.IsEnPassant()
		isCastle := m.IsCastling()
		isPromotion := m.IsPromotion()

		if err := pos.DoMove(m); err != nil {
			continue
		}
		if depth > 1 {
			nodes += perft.search(depth-1, pos)
		} else {
			nodes++
			if isCapture {
				perft.CaptureCounter++
			}
			if isEnPassant {
				perft.EnpassantCounter++
			}
			if isCastle {
				perft.CastleCounter++
			}
			if isPromotion {
				perft.PromotionCounter++
			}
			if pos.InCheck() {
				perft.CheckCounter++
				if !pos.HasLegalMove() {
					perft.CheckMateCounter++
				}
			}
		}
		_ = pos.UndoMove()
	}
	return nodes
}

func (perft *Perft) reset() {
	perft.Nodes = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
}
