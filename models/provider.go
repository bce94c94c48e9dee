package models

// RoutingMode controls which number a dispatch dials for a provider.
type RoutingMode string

const (
	// RoutingNormal dials the provider's own phone number.
	RoutingNormal RoutingMode = "normal"
	// RoutingSelf dials the requester's phone number instead, so an operator
	// can receive the agent call on their own line for testing.
	RoutingSelf RoutingMode = "self"
)

// LegacySelfPhoneSentinel is the old catalog convention for self routing:
// a provider whose phone field holds this literal string. The loader
// normalizes it into RoutingSelf.
const LegacySelfPhoneSentinel = "USER_TEST_PHONE"

// Provider is one callable business entity from the catalog. Catalog entries
// are read-only for the duration of a ranking pass; scoring derives a score
// keyed to the provider and never writes back.
type Provider struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Phone             string      `json:"phone"`
	Rating            float64     `json:"rating"`                       // 0..5
	Distance          float64     `json:"distance_miles"`               // miles, >= 0
	AvailabilityScore float64     `json:"availability_score,omitempty"` // 0..100
	RoutingMode       RoutingMode `json:"routing_mode,omitempty"`
}

// DialTarget resolves the number a dispatch should call: the requester's own
// number for self-routed providers, the provider's number otherwise.
func (p Provider) DialTarget(userPhone string) string {
	if p.RoutingMode == RoutingSelf {
		return userPhone
	}
	return p.Phone
}
