package resolver

import "travel/internal/domain"

// State is the dataset lifecycle: Unloaded until a load succeeds, then Loaded for the session.
// The zero value is Unloaded.
type State struct {
	dataset *domain.Dataset
}

// Unloaded returns a state with no dataset.
func Unloaded() State { return State{} }

// Loaded returns a state holding ds. A nil ds is treated as an empty document.
func Loaded(ds *domain.Dataset) State {
	if ds == nil {
		ds = &domain.Dataset{}
	}
	return State{dataset: ds}
}

// Dataset returns the loaded dataset and whether the state is Loaded.
func (s State) Dataset() (*domain.Dataset, bool) {
	return s.dataset, s.dataset != nil
}
