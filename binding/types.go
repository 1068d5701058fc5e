// SPDX-License-Identifier: MIT

package binding

import (
	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/spatial"
)

// DataSet is a user-supplied conditioning data table: a set of located
// rows (Locations) and, per output variable, the values observed at those
// rows (Values). A row's value for a variable is "missing" when the
// corresponding attr.Column mask bit is false, in which case every Init
// strategy skips it (spec §4.2, "Missing values in the source are skipped").
type DataSet struct {
	Locations spatial.Domain
	Values    *attr.Table
}

// Method binds a DataSet onto dom, producing a realization buffer with the
// given output variable names and the mask bits conditioning set.
type Method interface {
	Bind(dom spatial.Domain, data DataSet, names []string) (*attr.Table, error)
}
