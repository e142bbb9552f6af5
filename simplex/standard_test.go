package simplex

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

func TestSlack(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{
		-2, 5, -1,
		1, 3, 1,
	})
	requireDense(t, [][]float64{
		{-2, 5, -1, 1, 0},
		{1, 3, 1, 0, 1},
	}, Slack(a))
}

func TestAssemble(t *testing.T) {
	aug := mat.NewDense(3, 5, []float64{
		1, 1, 1, 0, 0,
		-2, 5, -1, 1, 0,
		1, 3, 1, 0, 1,
	})
	tab, err := Assemble(aug, []float64{7, -10, 12}, []float64{-2, -3, 5}, 1)
	require.NoError(t, err)

	requireDense(t, [][]float64{
		{0, -2, -3, 5, 0, 0},
		{7, 1, 1, 1, 0, 0},
		{-10, -2, 5, -1, 1, 0},
		{12, 1, 3, 1, 0, 1},
	}, tab.dense)
	assert.Equal(t, []int{-1, 3, 4}, tab.Basis())
}

func TestAssembleShape(t *testing.T) {
	aug := Slack(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))

	_, err := Assemble(aug, []float64{1}, []float64{1, 1}, 0)
	assert.True(t, errors.Is(err, ErrShape), "short rhs: %v", err)

	_, err = Assemble(aug, []float64{1, 1}, []float64{1, 1, 1}, 0)
	assert.True(t, errors.Is(err, ErrShape), "long objective: %v", err)

	_, err = Assemble(aug, []float64{1, 1}, []float64{1, 1}, 3)
	assert.True(t, errors.Is(err, ErrShape), "too many equality rows: %v", err)
}

func TestBuildNegatesObjectiveWhenMaximizing(t *testing.T) {
	p := problem(t, model.Maximize, [][]float64{{1, 2}}, []float64{4}, []float64{3, -1})
	tab, err := Build(p)
	require.NoError(t, err)
	requireDense(t, [][]float64{
		{0, -3, 1, 0},
		{4, 1, 2, 1},
	}, tab.dense)

	p.Sense = model.Minimize
	tab, err = Build(p)
	require.NoError(t, err)
	requireDense(t, [][]float64{
		{0, 3, -1, 0},
		{4, 1, 2, 1},
	}, tab.dense)
}

func TestBuildPadsEqualities(t *testing.T) {
	p := problem(t, model.Maximize, [][]float64{{1, 0}, {0, 1}}, []float64{3, 4}, []float64{1, 1})
	require.NoError(t, p.AddEquality([]float64{1, -1}, 1))

	tab, err := Build(p)
	require.NoError(t, err)
	requireDense(t, [][]float64{
		{0, -1, -1, 0, 0},
		{1, 1, -1, 0, 0},
		{3, 1, 0, 1, 0},
		{4, 0, 1, 0, 1},
	}, tab.dense)
	assert.Equal(t, []int{-1, 2, 3}, tab.Basis())
}

func TestBuildRejectsInvalidProblem(t *testing.T) {
	p := model.NewProblem(0, 2)
	require.NoError(t, p.SetC([]float64{1, 1}))
	_, err := Build(p)
	assert.True(t, errors.Is(err, model.ErrShape), "no rows: %v", err)
}
