package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreclerigo/payload-api/internal/pkg/models"
)

func bme680Schema() Schema {
	return Schema{Name: "BME680", New: func() interface{} { return &models.BME680Reading{} }}
}

func gsaSchema() Schema {
	return Schema{Name: "GSA", New: func() interface{} { return &models.GPGSAReading{} }}
}

func gsvSchema() Schema {
	return Schema{Name: "GSV", New: func() interface{} { return &models.GPGSVReading{} }}
}

func TestValidPayloadIsAccepted(t *testing.T) {
	payload := json.RawMessage(`{"temperature": 21.5, "humidity": 45.0, "pressure": 1013.0, "gas_resistance": 50000}`)

	assert.Nil(t, bme680Schema().Validate(payload))
}

func TestZeroValuesSatisfyRequiredFields(t *testing.T) {
	payload := json.RawMessage(`{"temperature": 0, "humidity": 0, "pressure": 0, "gas_resistance": 0}`)

	assert.Nil(t, bme680Schema().Validate(payload))
}

func TestEveryViolationIsReportedInOnePass(t *testing.T) {
	payload := json.RawMessage(`{"temperature": 21.5, "pressure": -2, "gas_resistance": -1}`)

	response := bme680Schema().Validate(payload)
	require.NotNil(t, response)
	assert.Equal(t, "BME680 Validation Error", response.Name)
	require.Len(t, response.Details, 3)

	violated := map[string]string{}
	for _, detail := range response.Details {
		violated[detail.Context.Label] = detail.Type
	}

	assert.Equal(t, "any.required", violated["humidity"])
	assert.Equal(t, "number.min", violated["pressure"])
	assert.Equal(t, "number.min", violated["gas_resistance"])
}

func TestEmptyPayloadReportsEveryRequiredField(t *testing.T) {
	response := bme680Schema().Validate(nil)
	require.NotNil(t, response)
	assert.Len(t, response.Details, 4)
}

func TestWrongFieldTypeIsReportedWithBaseType(t *testing.T) {
	payload := json.RawMessage(`{"temperature": "warm", "humidity": 45.0, "pressure": 1013.0, "gas_resistance": 50000}`)

	response := bme680Schema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)
	assert.Equal(t, "number.base", response.Details[0].Type)
	assert.Equal(t, []interface{}{"temperature"}, response.Details[0].Path)
}

func TestSatelliteOutOfBoundsNamesTheOffendingEntry(t *testing.T) {
	payload := json.RawMessage(`{"mode": "A", "fix_type": 1, "satelites": [1, 2, 13], "pdop": 1.1, "hdop": 1.2, "vdop": 1.3}`)

	response := gsaSchema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)

	detail := response.Details[0]
	assert.Equal(t, `"satelites[2]" must be less than or equal to 12`, detail.Message)
	assert.Equal(t, []interface{}{"satelites", 2}, detail.Path)
	assert.Equal(t, float64(13), detail.Context.Value)
}

func TestEnumViolationListsAllowedValues(t *testing.T) {
	payload := json.RawMessage(`{"mode": "X", "fix_type": 1, "satelites": [1], "pdop": 1.1, "hdop": 1.2, "vdop": 1.3}`)

	response := gsaSchema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)
	assert.Equal(t, `"mode" must be one of [A, M]`, response.Details[0].Message)
	assert.Equal(t, "any.only", response.Details[0].Type)
}

func TestNestedSatelliteFieldPathIncludesIndex(t *testing.T) {
	payload := json.RawMessage(`{"total_messages": 1, "message_number": 1, "satelites": [{"elevation": 45, "azimuth": 180, "snr": 30}]}`)

	response := gsvSchema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)
	assert.Equal(t, []interface{}{"satelites", 0, "prn"}, response.Details[0].Path)
	assert.Equal(t, "any.required", response.Details[0].Type)
}

func TestUndeclaredKeysAreRejected(t *testing.T) {
	payload := json.RawMessage(`{"temperature": 21.5, "humidity": 45.0, "pressure": 1013.0, "gas_resistance": 50000, "intruder": "x"}`)

	response := bme680Schema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)

	detail := response.Details[0]
	assert.Equal(t, `"intruder" is not allowed`, detail.Message)
	assert.Equal(t, "object.unknown", detail.Type)
	assert.Equal(t, []interface{}{"intruder"}, detail.Path)
	assert.Equal(t, "x", detail.Context.Value)
}

func TestUndeclaredKeysAreReportedAlongsideOtherViolations(t *testing.T) {
	payload := json.RawMessage(`{"intruder": "x"}`)

	response := bme680Schema().Validate(payload)
	require.NotNil(t, response)
	// four missing required fields plus the undeclared key, all in one pass
	require.Len(t, response.Details, 5)

	types := map[string]int{}
	for _, detail := range response.Details {
		types[detail.Type]++
	}
	assert.Equal(t, 4, types["any.required"])
	assert.Equal(t, 1, types["object.unknown"])
}

func TestUndeclaredNestedKeysAreReportedWithTheirPath(t *testing.T) {
	payload := json.RawMessage(`{"total_messages": 1, "message_number": 1, "satelites": [{"prn": 1, "elevation": 45, "azimuth": 180, "snr": 30, "extra": 7}]}`)

	response := gsvSchema().Validate(payload)
	require.NotNil(t, response)
	require.Len(t, response.Details, 1)
	assert.Equal(t, []interface{}{"satelites", 0, "extra"}, response.Details[0].Path)
	assert.Equal(t, "object.unknown", response.Details[0].Type)
}

func TestParseIDAcceptsWellFormedObjectIDs(t *testing.T) {
	id, response := ParseID("507f1f77bcf86cd799439011")

	assert.Nil(t, response)
	assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
}

func TestParseIDRejectsMalformedIdentifiers(t *testing.T) {
	for _, malformed := range []string{"", "123", "507f1f77bcf86cd79943901", "507f1f77bcf86cd7994390111", "zzzf1f77bcf86cd799439011"} {
		_, response := ParseID(malformed)

		require.NotNil(t, response, "expected %q to be rejected", malformed)
		assert.Equal(t, "ID Validation Error", response.Name)
		require.Len(t, response.Details, 1)
		assert.Equal(t, malformed, response.Details[0].Context.Value)
		assert.Equal(t, []interface{}{"id"}, response.Details[0].Path)
	}
}
