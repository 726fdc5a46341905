package domain

// Place is a single recommendation: a beach, a temple or a city.
type Place struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// Country groups the cities recommended for it. It has no image or description of its own.
type Country struct {
	Name   string  `json:"name"`
	Cities []Place `json:"cities"`
}

// Dataset is the loaded travel-recommendation document.
// Any collection may be nil, which is treated the same as empty.
type Dataset struct {
	Beaches   []Place   `json:"beaches"`
	Temples   []Place   `json:"temples"`
	Countries []Country `json:"countries"`
}

// ResultRecord is the uniform shape every extraction path produces.
type ResultRecord struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// RecordFromPlace projects a Place into a ResultRecord.
func RecordFromPlace(p Place) ResultRecord {
	return ResultRecord{Name: p.Name, ImageURL: p.ImageURL, Description: p.Description}
}

// OutcomeKind is the resolver's four-way signal.
type OutcomeKind int

const (
	OutcomeDataNotLoaded OutcomeKind = iota
	OutcomeEmpty
	OutcomeNoMatch
	OutcomeResults
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDataNotLoaded:
		return "data_not_loaded"
	case OutcomeEmpty:
		return "empty"
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeResults:
		return "results"
	default:
		return "unknown"
	}
}

// Outcome is what a query resolves to. Records is non-empty only when Kind is OutcomeResults.
type Outcome struct {
	Kind    OutcomeKind
	Records []ResultRecord
}

// Category is a whole-collection keyword class.
type Category int

const (
	CategoryBeach Category = iota
	CategoryTemple
	CategoryCountry
)

func (c Category) String() string {
	switch c {
	case CategoryBeach:
		return "beach"
	case CategoryTemple:
		return "temple"
	case CategoryCountry:
		return "country"
	default:
		return "unknown"
	}
}
