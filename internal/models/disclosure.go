package models

// Disclosure is the outcome of resolving a suspicion. ShownCard carries the
// real card identity; it must be blanked for every viewer except the asking
// player before the outcome leaves the engine boundary.
type Disclosure struct {
	HasCard   bool   `json:"has_card"`
	Discloser string `json:"discloser,omitempty"`
	ShownCard *Card  `json:"shown_card,omitempty"`
}
