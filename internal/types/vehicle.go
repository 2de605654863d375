package types

// Visibility determines whether a vehicle surfaces on public catalogue pages
// or only in the internal admin console
type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityInternal Visibility = "INTERNAL"
)

// ProcessingType is the raw manufacturer-feed classification code for a unit.
// The feed enumerates more codes than the ones below; anything outside this
// allow-list must never surface in the catalogue.
type ProcessingType string

const (
	// ProcessingTypeShowroom units are on the showroom floor
	ProcessingTypeShowroom ProcessingType = "SH"
	// ProcessingTypeStock units are sellable stock
	ProcessingTypeStock ProcessingType = "ST"
	// ProcessingTypeDemo units are demo cars, kept internal-only
	ProcessingTypeDemo ProcessingType = "DE"
)

// Classify maps a processing type to a visibility. The second return value is
// false for codes outside the allow-list.
func (p ProcessingType) Classify() (Visibility, bool) {
	switch p {
	case ProcessingTypeShowroom, ProcessingTypeStock:
		return VisibilityPublic, true
	case ProcessingTypeDemo:
		return VisibilityInternal, true
	default:
		return "", false
	}
}

// MinSellableStatusCode is the hard floor on the manufacturer lifecycle
// status below which a unit is not yet sellable or trackable
const MinSellableStatusCode = 150
