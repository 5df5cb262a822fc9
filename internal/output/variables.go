// Package output renders the result of a run as step outputs.
package output

import (
	"strconv"

	"github.com/MyCarrier-DevOps/go-releasebump/internal/bump"
)

// Output variable names.
const (
	VarVersion   = "version"
	VarChanged   = "changed"
	VarBranch    = "branch"
	VarCommitted = "committed"
)

// GetVariables returns the output variables of a run.
func GetVariables(res *bump.Result) map[string]string {
	return map[string]string{
		VarVersion:   res.Version,
		VarChanged:   strconv.FormatBool(res.Changed),
		VarBranch:    res.Branch,
		VarCommitted: strconv.FormatBool(res.Committed),
	}
}
