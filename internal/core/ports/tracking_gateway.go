package ports

import "context"

// Carrier delivery state codes as reported by the express tracking provider.
const (
	DeliveryStateInTransit  = "0"
	DeliveryStateCollected  = "1"
	DeliveryStateProblem    = "2"
	DeliveryStateSigned     = "3"
	DeliveryStateReturned   = "4"
	DeliveryStateDelivering = "5"
	DeliveryStateSentBack   = "6"
)

// TrackingEvent is one step of a parcel's route history.
type TrackingEvent struct {
	Time    string `json:"time"`
	Context string `json:"context"`
}

// TrackingInfo is the carrier's view of a shipment.
type TrackingInfo struct {
	TrackingNumber string
	State          string // one of the DeliveryState* codes
	StateText      string // localized label for State
	Company        string
	Events         []TrackingEvent
}

// ErrTrackingNotReady reports that the carrier has no route data yet for a
// tracking number, which is normal right after dispatch.
type ErrTrackingNotReady struct {
	TrackingNumber string
}

func (e *ErrTrackingNotReady) Error() string {
	return "no tracking data yet for " + e.TrackingNumber
}

// TrackingGateway queries the express carrier for shipment progress.
// phoneTail is the last four digits of the recipient's phone number, which
// some carriers require to authorize the lookup.
type TrackingGateway interface {
	Query(ctx context.Context, trackingNumber, phoneTail string) (TrackingInfo, error)
}
