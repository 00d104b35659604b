package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/config"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
)

type mockDatastore struct {
	fetchAllResult []bson.M
	fetchAllErr    error

	insertedCollection string
	insertedDocument   bson.M
	insertCalls        int
	insertErr          error

	deletedCollection string
	deletedID         primitive.ObjectID
	deleteResult      bson.M
	deleteCalls       int
	deleteErr         error
}

func (m *mockDatastore) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	return m.fetchAllResult, m.fetchAllErr
}

func (m *mockDatastore) Insert(ctx context.Context, collection string, document bson.M) (bson.M, error) {
	m.insertCalls++
	m.insertedCollection = collection
	m.insertedDocument = document
	return document, m.insertErr
}

func (m *mockDatastore) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	m.deleteCalls++
	m.deletedCollection = collection
	m.deletedID = id
	return m.deleteResult, m.deleteErr
}

func newTestRouter(db *mockDatastore) *RequestRouter {
	cfg := config.Config{ServicePort: "8880", ExternalURL: "http://127.0.0.1:8880"}
	return createRequestRouter(logging.NewLogger(), cfg, db)
}

func performRequest(router *RequestRouter, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.impl.ServeHTTP(recorder, request)
	return recorder
}

func TestFetchAllReturnsStoredDocuments(t *testing.T) {
	db := &mockDatastore{fetchAllResult: []bson.M{{"temperature": 21.5}}}

	response := performRequest(newTestRouter(db), "GET", "/api/v1/bme680", "")

	require.Equal(t, http.StatusOK, response.Code)

	documents := []map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &documents))
	require.Len(t, documents, 1)
	assert.Equal(t, 21.5, documents[0]["temperature"])
}

func TestFetchAllHidesBackendFailureDetails(t *testing.T) {
	db := &mockDatastore{fetchAllErr: errors.New("connection reset by primary")}

	response := performRequest(newTestRouter(db), "GET", "/api/v1/bme680", "")

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.NotContains(t, response.Body.String(), "primary")
}

func TestInsertValidReadingReachesTheDatastore(t *testing.T) {
	db := &mockDatastore{}

	body := `{"data": {"temperature": 21.5, "humidity": 45.0, "pressure": 1013.0, "gas_resistance": 50000}}`
	response := performRequest(newTestRouter(db), "POST", "/api/v1/bme680", body)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "Data added successfully", response.Body.String())
	assert.Equal(t, 1, db.insertCalls)
	assert.Equal(t, "bme680", db.insertedCollection)
	assert.Equal(t, 21.5, db.insertedDocument["temperature"])
}

func TestInsertSubSentenceUsesItsOwnCollection(t *testing.T) {
	db := &mockDatastore{}

	body := `{"data": {"valid": true, "latitude": 40.6, "longitude": -8.6, "speed": 1.2, "date": "050423"}}`
	response := performRequest(newTestRouter(db), "POST", "/api/v1/neo7m/gprmc", body)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "neo7m-gprmc", db.insertedCollection)
}

func TestInsertRejectsSchemaViolationsBeforeTheDatastore(t *testing.T) {
	db := &mockDatastore{}

	body := `{"data": {"temperature": 21.5, "humidity": -1}}`
	response := performRequest(newTestRouter(db), "POST", "/api/v1/bme680", body)

	require.Equal(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, 0, db.insertCalls)

	errorResponse := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &errorResponse))
	assert.Equal(t, "BME680 Validation Error", errorResponse["name"])

	details, ok := errorResponse["details"].([]interface{})
	require.True(t, ok)
	assert.Len(t, details, 3)
}

func TestMalformedJSONYieldsSyntaxErrorShape(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "POST", "/api/v1/bme680", `{"data": {`)

	require.Equal(t, http.StatusBadRequest, response.Code)

	errorResponse := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &errorResponse))
	assert.Equal(t, "Syntax Error", errorResponse["name"])
	_, isString := errorResponse["details"].(string)
	assert.True(t, isString, "syntax errors carry a single message, not an itemized list")
	assert.Equal(t, 0, db.insertCalls)
}

func TestInsertHidesBackendFailureDetails(t *testing.T) {
	db := &mockDatastore{insertErr: errors.New("socket closed")}

	body := `{"data": {"co2_ppm": 412.0}}`
	response := performRequest(newTestRouter(db), "POST", "/api/v1/sen0159", body)

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.NotContains(t, response.Body.String(), "socket")
}

func TestDeleteRejectsMalformedIdentifiersBeforeTheDatastore(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "DELETE", "/api/v1/bme680/not-an-id", "")

	require.Equal(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, 0, db.deleteCalls)

	errorResponse := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &errorResponse))
	assert.Equal(t, "ID Validation Error", errorResponse["name"])
}

func TestDeleteReturnsTheDeletedDocument(t *testing.T) {
	db := &mockDatastore{deleteResult: bson.M{"temperature": 21.5}}

	response := performRequest(newTestRouter(db), "DELETE", "/api/v1/bme680/507f1f77bcf86cd799439011", "")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "bme680", db.deletedCollection)
	assert.Equal(t, "507f1f77bcf86cd799439011", db.deletedID.Hex())

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "Data deleted successfully", body["message"])
	require.NotNil(t, body["document"])
}

func TestDeleteOfUnknownIdentifierIsANotFoundOutcome(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "DELETE", "/api/v1/bme680/507f1f77bcf86cd799439011", "")

	require.Equal(t, http.StatusOK, response.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "Data not found", body["message"])
}

func TestUnmatchedPathsReturnAFixedShape404(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "GET", "/api/v1/nosuchsensor", "")

	require.Equal(t, http.StatusNotFound, response.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "404 | Endpoint /api/v1/nosuchsensor Not Found!", body["message"])
	assert.Equal(t, "http://127.0.0.1:8880/api/v1/nosuchsensor", body["url"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUnroutedMethodOnKnownPathReturnsTheFixedShape404(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "PUT", "/api/v1/bme680", `{"data": {}}`)

	require.Equal(t, http.StatusNotFound, response.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "404 | Endpoint /api/v1/bme680 Not Found!", body["message"])
	assert.Equal(t, "http://127.0.0.1:8880/api/v1/bme680", body["url"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAPIRootRedirectsToTheDocs(t *testing.T) {
	db := &mockDatastore{}

	response := performRequest(newTestRouter(db), "GET", "/", "")

	require.Equal(t, http.StatusFound, response.Code)
	assert.Equal(t, APIBasePath+"/docs", response.Header().Get("Location"))
}

func TestEverySensorKindServesTheFullEndpointTriple(t *testing.T) {
	kinds := []string{
		"bme680", "mpu6500", "neo7m", "mq9", "sen0159", "sen0322",
		"neo7m/gprmc", "neo7m/gpvtg", "neo7m/gpgga", "neo7m/gpgsa", "neo7m/gpgll", "neo7m/gpgsv",
	}

	for _, kind := range kinds {
		db := &mockDatastore{}
		router := newTestRouter(db)

		assert.Equal(t, http.StatusOK, performRequest(router, "GET", "/api/v1/"+kind, "").Code, kind)
		assert.NotEqual(t, http.StatusNotFound, performRequest(router, "POST", "/api/v1/"+kind, `{"data": {}}`).Code, kind)
		assert.Equal(t, http.StatusOK, performRequest(router, "DELETE", "/api/v1/"+kind+"/507f1f77bcf86cd799439011", "").Code, kind)
	}
}
