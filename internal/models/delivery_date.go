package models

// DeliveryDate labels a delivery batch, e.g. "23.12". It is compared for
// equality only and is never parsed as a calendar date.
type DeliveryDate string

// DefaultDeliveryDate matches the column default of customers and orders.
const DefaultDeliveryDate DeliveryDate = "23.12"

// OrDefault returns d, or fallback when d is empty.
func (d DeliveryDate) OrDefault(fallback DeliveryDate) DeliveryDate {
	if d == "" {
		return fallback
	}
	return d
}

func (d DeliveryDate) String() string {
	return string(d)
}
