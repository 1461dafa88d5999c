package interest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
)

type pool struct {
	core.IPoolService
	calls int
}

func (p *pool) AccrueAll(context.Context) error {
	p.calls++
	return nil
}

func TestWorker(t *testing.T) {
	p := &pool{}

	_, err := New(&core.Config{App: core.App{AccrueSpec: "every now and then"}}, p)
	assert.Error(t, err)

	w, err := New(&core.Config{}, p)
	require.NoError(t, err)
	require.NoError(t, w.onWork(context.Background()))
	assert.Equal(t, 1, p.calls)
}
