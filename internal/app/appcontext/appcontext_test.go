package appcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvString(t *testing.T) {
	assert.Equal(t, "server", EnvServer.String())
	assert.Equal(t, "worker", EnvWorker.String())
	assert.Equal(t, "cli", EnvCLI.String())
	assert.Equal(t, "unknown", Env(99).String())
}

func TestDeclare(t *testing.T) {
	assert.Equal(t, Ctx{Env: EnvWorker}, Declare(EnvWorker))
}
