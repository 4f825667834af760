package coloring

// Package coloring implements the state of one coloring page while it is
// open: which numbered areas are done, the fill each got, the current color
// and pen selection, and the derived star rating. Nothing here is persisted.
