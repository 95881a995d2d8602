// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/app/system/ratelimit"
)

// DBDeps holds back-end dependencies for the app. The mock backend has
// no external database; its "backend" is the in-memory engine plus the
// shared rate limiter.
type DBDeps struct {
	Srv     *mock.Server
	Limiter *ratelimit.Limiter
}
