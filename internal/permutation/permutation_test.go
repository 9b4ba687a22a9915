package permutation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/permutation"
)

func TestNew_IdentityPermutation(t *testing.T) {
	s := permutation.New(5)
	require.Equal(t, []int{0, 1, 2, 3, 4}, s.Perm())
	require.Equal(t, 5, s.Size())
}

func TestValidate_RejectsOutOfRangeAndDuplicates(t *testing.T) {
	require.NoError(t, permutation.Validate([]int{2, 0, 1}))
	require.Error(t, permutation.Validate([]int{0, 1, 3}))
	require.Error(t, permutation.Validate([]int{0, 0, 1}))
}

func TestApplySwap_IncrementalCostMatchesFullRecompute(t *testing.T) {
	cost := func(perm []int) float64 {
		var total float64
		for i, v := range perm {
			total += float64(v) * float64(i)
		}
		return total
	}
	delta := func(perm []int, i, j int) float64 {
		vi, vj := perm[i], perm[j]
		before := float64(vi)*float64(i) + float64(vj)*float64(j)
		after := float64(vj)*float64(i) + float64(vi)*float64(j)
		return after - before
	}

	s := permutation.New(6)
	s.ComputeCost = cost
	s.EvaluateSwap = delta
	s.UpdateCost()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := rng.Intn(6)
		b := rng.Intn(6)
		s.ApplySwap(a, b)
		require.InDelta(t, cost(s.Perm()), s.Cost(), 1e-9)
		require.NoError(t, permutation.Validate(s.Perm()))
	}
}

func TestCopyFrom_DeepCopiesPermAndCost(t *testing.T) {
	a := permutation.New(4)
	a.ComputeCost = func(perm []int) float64 { return 42 }
	a.EvaluateSwap = func(perm []int, i, j int) float64 { return 0 }
	a.UpdateCost()

	b := permutation.New(4)
	b.ComputeCost = func(perm []int) float64 { return 0 }

	require.NoError(t, b.CopyFrom(&a))
	require.Equal(t, a.Perm(), b.Perm())
	require.Equal(t, a.Cost(), b.Cost())

	// mutating a's backing array must not affect b's copy
	a.ApplySwap(0, 1)
	require.NotEqual(t, a.Perm(), b.Perm())
}

func TestRandomShuffle_PreservesPermutationInvariant(t *testing.T) {
	s := permutation.New(8)
	s.ComputeCost = func(perm []int) float64 { return 0 }
	rng := rand.New(rand.NewSource(1))
	permutation.RandomShuffle(&s, rng)
	require.NoError(t, permutation.Validate(s.Perm()))
}

func TestPerturbate_KeepsCostConsistent(t *testing.T) {
	s := permutation.New(5)
	s.ComputeCost = func(perm []int) float64 {
		var total float64
		for i, v := range perm {
			total += float64(v * i)
		}
		return total
	}
	s.EvaluateSwap = func(perm []int, i, j int) float64 {
		vi, vj := perm[i], perm[j]
		before := vi*i + vj*j
		after := vj*i + vi*j
		return float64(after - before)
	}
	s.UpdateCost()

	rng := rand.New(rand.NewSource(3))
	permutation.Perturbate(&s, 10, rng)
	require.InDelta(t, s.ComputeCost(s.Perm()), s.Cost(), 1e-9)
}
