package over_sampling

import (
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

func TestSelectBootstrap(t *testing.T) {
	y := []int{0, 1, 0, 1, 1, 0}
	rng := rand.New(rand.NewPCG(42, 42))

	eligible, drawn, err := selectBootstrap(y, 1, 10, rng)
	if err != nil {
		t.Fatalf("selectBootstrap failed: %v", err)
	}

	if len(eligible) != 3 || eligible[0] != 1 || eligible[1] != 3 || eligible[2] != 4 {
		t.Fatalf("eligible = %v, want [1 3 4]", eligible)
	}
	if len(drawn) != 10 {
		t.Fatalf("len(drawn) = %d, want 10", len(drawn))
	}
	for _, idx := range drawn {
		if y[idx] != 1 {
			t.Errorf("Drawn index %d does not belong to class 1", idx)
		}
	}
}

func TestSelectBootstrapEmptyPool(t *testing.T) {
	y := []int{0, 0, 0}
	rng := rand.New(rand.NewPCG(1, 1))

	_, _, err := selectBootstrap(y, 7, 2, rng)
	if err == nil {
		t.Fatal("Expected EmptyPoolError")
	}
	var poolErr *errors.EmptyPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("Expected *EmptyPoolError, got %T", err)
	}
}

func TestSelectBootstrapZeroCount(t *testing.T) {
	y := []int{0, 1}
	rng := rand.New(rand.NewPCG(1, 1))

	_, drawn, err := selectBootstrap(y, 1, 0, rng)
	if err != nil {
		t.Fatalf("selectBootstrap failed: %v", err)
	}
	if len(drawn) != 0 {
		t.Errorf("len(drawn) = %d, want 0", len(drawn))
	}
}

func TestSelectBootstrapDeterministic(t *testing.T) {
	y := []int{0, 1, 1, 0, 1}

	_, drawn1, err := selectBootstrap(y, 1, 20, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("selectBootstrap failed: %v", err)
	}
	_, drawn2, err := selectBootstrap(y, 1, 20, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("selectBootstrap failed: %v", err)
	}
	for i := range drawn1 {
		if drawn1[i] != drawn2[i] {
			t.Fatal("Identical seeds must yield identical draw sequences")
		}
	}
}
