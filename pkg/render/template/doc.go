// Package template defines the template renderer seam pages render views
// through. The pongo2 backed implementation lives in the pongo subpackage.
package template
