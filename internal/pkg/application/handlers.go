package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/repositories/database"
	"github.com/andreclerigo/payload-api/internal/pkg/validation"
)

type server struct {
	db  database.Datastore
	log logging.Logger
}

//insertRequest is the envelope every POST body must arrive in
type insertRequest struct {
	Data json.RawMessage `json:"data"`
}

//syntaxError is the body returned for malformed JSON, as opposed to the
//itemized shape returned for schema violations
type syntaxError struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

func (s *server) fetchAll(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := s.db.FetchAll(r.Context(), collection)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, documents)
	}
}

func (s *server) insert(collection string, schema validation.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := insertRequest{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, syntaxError{Name: "Syntax Error", Details: err.Error()})
			return
		}

		if errResponse := schema.Validate(request.Data); errResponse != nil {
			writeJSON(w, http.StatusBadRequest, errResponse)
			return
		}

		document := bson.M{}
		if err := json.Unmarshal(request.Data, &document); err != nil {
			writeJSON(w, http.StatusBadRequest, syntaxError{Name: "Syntax Error", Details: err.Error()})
			return
		}

		if _, err := s.db.Insert(r.Context(), collection, document); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Data added successfully"))
	}
}

func (s *server) deleteByID(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, errResponse := validation.ParseID(chi.URLParam(r, "id"))
		if errResponse != nil {
			writeJSON(w, http.StatusBadRequest, errResponse)
			return
		}

		document, err := s.db.DeleteByID(r.Context(), collection, id)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if document == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Data not found"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "Data deleted successfully",
			"document": document,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

//requestLogger logs method, path, client address and body ahead of every
//handler, and the status code plus elapsed time once the response is written
func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := []byte{}
			if r.Body != nil {
				body, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			log.WithFields(map[string]interface{}{
				"ip":   r.RemoteAddr,
				"body": string(body),
			}).Infof("[ENDPOINT] %s '%s'", r.Method, r.URL.Path)

			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(wrapped, r)

			log.WithFields(map[string]interface{}{
				"status_code":  wrapped.Status(),
				"time_elapsed": fmt.Sprintf("%.3f ms", float64(time.Since(start).Microseconds())/1000.0),
			}).Infof("[RESPONSE] %s '%s'", r.Method, r.URL.Path)
		})
	}
}
