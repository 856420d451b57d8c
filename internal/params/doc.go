// Package params holds the parameter model edited by asset panels. A model
// belongs to one timeline item (its owner) and exposes its values through
// rows and roles; changes are announced through DataChanged.
package params
