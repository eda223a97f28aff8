package debugs

import (
	"github.com/reusee/dscope"
)

// Module needs a logs.Logger from the enclosing scope.
type Module struct {
	dscope.Module
}
