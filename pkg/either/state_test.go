package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_CorruptStateIsUnreachable(t *testing.T) {
	t.Parallel()
	e := Either[int, string]{ok: 1, err: "x", state: state(7)}

	assert.ErrorIs(t, e.Valid(), ErrUnreachableState)
	assert.PanicsWithError(t, ErrUnreachableState.Error(), func() {
		Match(e, func(int) int { return 1 }, func(string) int { return 2 })
	})
}

func TestFactories_NeverProduceCorruptState(t *testing.T) {
	t.Parallel()
	for _, e := range []Either[int, string]{Ok[int, string](0), Ok[int, string](1), Err[int, string](""), Err[int, string]("x")} {
		assert.Contains(t, []state{okState, errState}, e.state)
	}
}
