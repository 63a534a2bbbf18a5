package pms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAvailabilityValid(t *testing.T) {
	raw := json.RawMessage(`{"items":[
		{"roomTypeId":"DLX","roomsAvailable":2,"rate":4500,"extra":"ignored"},
		{"roomTypeId":"STD","roomsAvailable":0,"rate":0}
	]}`)
	items, err := decodeAvailability(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, AvailabilityItem{RoomTypeID: "DLX", RoomsAvailable: 2, Rate: 4500}, items[0])
	assert.Equal(t, AvailabilityItem{RoomTypeID: "STD", RoomsAvailable: 0, Rate: 0}, items[1])
}

func TestDecodeAvailabilityRejectsNegativeRooms(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"roomTypeId":"DLX","roomsAvailable":-1,"rate":4500}]}`)
	_, err := decodeAvailability(raw)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "items[0].roomsAvailable", valErr.Field)
}

func TestDecodeAvailabilityRejectsNonIntegerRooms(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"roomTypeId":"DLX","roomsAvailable":2.5,"rate":4500}]}`)
	_, err := decodeAvailability(raw)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Field, "roomsAvailable")
}

func TestDecodeAvailabilityRejectsMissingFields(t *testing.T) {
	cases := map[string]struct {
		raw   string
		field string
	}{
		"missing items":      {`{}`, "items"},
		"missing roomTypeId": {`{"items":[{"roomsAvailable":1,"rate":100}]}`, "items[0].roomTypeId"},
		"missing rate":       {`{"items":[{"roomTypeId":"DLX","roomsAvailable":1}]}`, "items[0].rate"},
		"negative rate":      {`{"items":[{"roomTypeId":"DLX","roomsAvailable":1,"rate":-5}]}`, "items[0].rate"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeAvailability(json.RawMessage(tc.raw))
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestDecodeBookingValid(t *testing.T) {
	raw := json.RawMessage(`{"confirmationNumber":"AI12345678","total":9000,"status":"confirmed","ignored":true}`)
	result, err := decodeBooking(raw)
	require.NoError(t, err)
	assert.Equal(t, &BookingResult{ConfirmationNumber: "AI12345678", Total: 9000, Status: StatusConfirmed}, result)
}

func TestDecodeBookingRejectsUnknownStatus(t *testing.T) {
	raw := json.RawMessage(`{"confirmationNumber":"AI12345678","total":9000,"status":"refunded"}`)
	_, err := decodeBooking(raw)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "status", valErr.Field)
}

func TestDecodeBookingRejectsMissingConfirmation(t *testing.T) {
	raw := json.RawMessage(`{"total":9000,"status":"confirmed"}`)
	_, err := decodeBooking(raw)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "confirmationNumber", valErr.Field)
}

func TestDecodeBookingEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"booking":{"confirmationNumber":"AI12345678","total":9000,"status":"cancelled"}}`)
	result, err := decodeBookingEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, result.Status)
}

func TestDecodeBookingEnvelopeRejectsMissingBooking(t *testing.T) {
	_, err := decodeBookingEnvelope(json.RawMessage(`{}`))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "booking", valErr.Field)
}

func TestDecodeBookingEnvelopeFieldPrefix(t *testing.T) {
	raw := json.RawMessage(`{"booking":{"confirmationNumber":"AI12345678","total":9000,"status":"noshow"}}`)
	_, err := decodeBookingEnvelope(raw)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "booking.status", valErr.Field)
}
