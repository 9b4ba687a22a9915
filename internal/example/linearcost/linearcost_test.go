package linearcost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/core"
	"localsearch/internal/example/linearcost"
)

func TestNew_IdentityPermutationHasExpectedCost(t *testing.T) {
	sol := linearcost.New(5)
	// cost = sum_i i*i = 0+1+4+9+16
	require.Equal(t, 30.0, sol.Cost())
}

func TestCopyFrom_RejectsWrongConcreteType(t *testing.T) {
	a := linearcost.New(3)
	err := a.CopyFrom(notALinearCostSolution{})
	require.Error(t, err)
}

type notALinearCostSolution struct{}

func (notALinearCostSolution) IsFeasibleSolution()                     {}
func (notALinearCostSolution) Cost() float64                           { return 0 }
func (notALinearCostSolution) CopyFrom(core.EvaluableSolution) error   { return nil }
