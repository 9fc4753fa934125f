package formula_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzo/formula"
)

func TestEvalAll(t *testing.T) {
	exprs := []string{"1 + 1 =", "2 * 3 =", "1/0 =", "27$3 =", "5 5 ="}
	res := formula.EvalAll(context.Background(), exprs, formula.Parallelism(2))
	require.Len(t, res, len(exprs))

	require.NoError(t, res[0].Err)
	assert.Equal(t, 2.0, res[0].Value)
	require.NoError(t, res[1].Err)
	assert.Equal(t, 6.0, res[1].Value)
	require.NoError(t, res[3].Err)
	assert.InDelta(t, 3.0, res[3].Value, 1e-9)

	var fe *formula.Error
	require.ErrorAs(t, res[2].Err, &fe)
	assert.Equal(t, formula.DivisionByZero, fe.Kind)
	require.ErrorAs(t, res[4].Err, &fe)
	assert.Equal(t, formula.UnexpectedToken, fe.Kind)
}

func TestEvalAllOrder(t *testing.T) {
	var exprs []string
	for i := 0; i < 200; i++ {
		exprs = append(exprs, strconv.Itoa(i)+" + 1 =")
	}
	res := formula.EvalAll(context.Background(), exprs, formula.Parallelism(8))
	require.Len(t, res, len(exprs))
	for i, r := range res {
		require.NoError(t, r.Err)
		assert.Equal(t, float64(i+1), r.Value)
	}
}

func TestEvalAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := formula.EvalAll(ctx, []string{"1 + 1 =", "2 * 3 ="})
	require.Len(t, res, 2)
	for _, r := range res {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestEvalAllEmpty(t *testing.T) {
	res := formula.EvalAll(context.Background(), nil)
	assert.Empty(t, res)
}
