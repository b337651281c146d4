package main

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitStop_FalloAlEscucharDevuelveError(t *testing.T) {
	listenErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	cause := errors.New("listen tcp :8080: bind: address already in use")
	listenErr <- cause

	shutdown, err := awaitStop(listenErr, quit)

	require.Error(t, err)
	assert.False(t, shutdown)
	assert.ErrorIs(t, err, cause)
}

func TestAwaitStop_SenalIniciaApagado(t *testing.T) {
	listenErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	shutdown, err := awaitStop(listenErr, quit)

	require.NoError(t, err)
	assert.True(t, shutdown)
}

func TestAwaitStop_ListenerCerradoSinError(t *testing.T) {
	listenErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	listenErr <- nil

	shutdown, err := awaitStop(listenErr, quit)

	require.NoError(t, err)
	assert.False(t, shutdown)
}
