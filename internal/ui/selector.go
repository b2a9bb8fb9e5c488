package ui

// Selector presents candidates for interactive multi-selection. An empty
// result means the user cancelled or confirmed without choosing anything;
// neither is an error.
type Selector interface {
	Select(candidates []string) ([]string, error)
}
