// Package appcontext names the flavor of process being started, so the fx
// graph and configuration can vary per entrypoint.
package appcontext

type Env int

const (
	EnvServer Env = iota
	EnvWorker
	EnvCLI
)

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvWorker:
		return "worker"
	case EnvCLI:
		return "cli"
	}
	return "unknown"
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
