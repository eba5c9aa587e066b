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

package config

// searchConfiguration holds the handful of search settings. The UCI layer
// falls back to DefaultDepth when a "go" command doesn't specify a depth;
// a "go" command without movetime runs with no time limit, so
// DefaultMoveTimeMs is not applied. EmitCastling and EmitEnPassant are not
// read by move generation, which always emits both kinds of move.
type searchConfiguration struct {
	DefaultDepth      int
	DefaultMoveTimeMs int64
	EmitCastling      bool
	EmitEnPassant     bool
}

func init() {
	Settings.Search.DefaultDepth = 6
	Settings.Search.DefaultMoveTimeMs = 5000
	Settings.Search.EmitCastling = true
	Settings.Search.EmitEnPassant = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.DefaultDepth <= 0 {
		Settings.Search.DefaultDepth = 6
	}
	if Settings.Search.DefaultMoveTimeMs <= 0 {
		Settings.Search.DefaultMoveTimeMs = 5000
	}
}
