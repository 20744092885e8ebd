package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryDateOrDefault(t *testing.T) {
	assert.Equal(t, DeliveryDate("24.12"), DeliveryDate("24.12").OrDefault(DefaultDeliveryDate))
	assert.Equal(t, DefaultDeliveryDate, DeliveryDate("").OrDefault(DefaultDeliveryDate))
	assert.Equal(t, "23.12", DefaultDeliveryDate.String())
}
