package order

// Tracking holds optional carrier tracking details attached to an order once
// it ships.
type Tracking struct {
	carrier        string
	trackingNumber string
	trackingURL    string
}

// NewTracking creates tracking details. All fields are optional; a zero
// Tracking means no tracking information is available.
func NewTracking(carrier, trackingNumber, trackingURL string) Tracking {
	return Tracking{
		carrier:        carrier,
		trackingNumber: trackingNumber,
		trackingURL:    trackingURL,
	}
}

// Carrier returns the shipping carrier name.
func (t Tracking) Carrier() string { return t.carrier }

// TrackingNumber returns the carrier's tracking number.
func (t Tracking) TrackingNumber() string { return t.trackingNumber }

// TrackingURL returns a tracking page URL.
func (t Tracking) TrackingURL() string { return t.trackingURL }

// IsZero reports whether no tracking details are present.
func (t Tracking) IsZero() bool {
	return t == Tracking{}
}
