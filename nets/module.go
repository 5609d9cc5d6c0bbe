package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

// Module provides the HTTP client of remote record stores.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
