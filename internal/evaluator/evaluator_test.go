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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfenwick/chesswood/internal/position"

	. "github.com/mfenwick/chesswood/internal/types"
)

func TestHasInsufficientMaterialBareKings(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	assert.True(t, HasInsufficientMaterial(p.Board()))
}

func TestHasInsufficientMaterialLoneMinor(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/8/6NK w - - 0 1")
	require.NoError(t, err)
	assert.True(t, HasInsufficientMaterial(p.Board()))

	p, err = position.NewFen("k7/8/8/8/8/8/8/6BK w - - 0 1")
	require.NoError(t, err)
	assert.True(t, HasInsufficientMaterial(p.Board()))
}

func TestHasInsufficientMaterialFalseWithPawn(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/P7/7K w - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasInsufficientMaterial(p.Board()))
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasInsufficientMaterial(p.Board()))
}

func TestHasInsufficientMaterialFalseWithTwoMinors(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/8/NB5K w - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasInsufficientMaterial(p.Board()))
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewFen("k7/8/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, ValueDraw, Evaluate(p))
}

func TestEvaluateStartPositionIsRoughlyBalanced(t *testing.T) {
	p := position.New()
	score := Evaluate(p)
	assert.InDelta(t, 0, int(score), 50)
}

func TestEvaluateMaterialImbalanceFavorsSideUp(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(p), ValueZero)

	p, err = position.NewFen("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)
	assert.Less(t, Evaluate(p), ValueZero)
}
