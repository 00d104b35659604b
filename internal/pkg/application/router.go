package application

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"

	"github.com/rs/cors"

	_ "github.com/andreclerigo/payload-api/docs"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/config"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/repositories/database"
	"github.com/andreclerigo/payload-api/internal/pkg/models"
	"github.com/andreclerigo/payload-api/internal/pkg/validation"
)

//APIBasePath is the versioned prefix every sensor route is mounted under
const APIBasePath = "/api/v1"

type RequestRouter struct {
	impl *chi.Mux
}

//Get accepts a pattern that should be routed to the handlerFn on a GET request
func (router *RequestRouter) Get(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Get(pattern, handlerFn)
}

//Post accepts a pattern that should be routed to the handlerFn on a POST request
func (router *RequestRouter) Post(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Post(pattern, handlerFn)
}

//Delete accepts a pattern that should be routed to the handlerFn on a DELETE request
func (router *RequestRouter) Delete(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Delete(pattern, handlerFn)
}

//subresource is a specialized sentence type persisted in its own
//sub-collection under the parent sensor's path prefix
type subresource struct {
	pattern    string
	collection string
	schema     validation.Schema
}

//resource binds a sensor kind to its collection and schema. The binding is
//fixed here at registration time so validation never has to re-derive the
//schema from the request path.
type resource struct {
	kind         string
	collection   string
	schema       validation.Schema
	subresources []subresource
}

func apiResources() []resource {
	return []resource{
		{
			kind:       "bme680",
			collection: "bme680",
			schema:     validation.Schema{Name: "BME680", New: func() interface{} { return &models.BME680Reading{} }},
		},
		{
			kind:       "mpu6500",
			collection: "mpu6500",
			schema:     validation.Schema{Name: "MPU6500", New: func() interface{} { return &models.MPU6500Reading{} }},
		},
		{
			kind:       "neo7m",
			collection: "neo7m",
			schema:     validation.Schema{Name: "NEO-7M", New: func() interface{} { return &models.NEO7MReading{} }},
			subresources: []subresource{
				{
					pattern:    "gprmc",
					collection: "neo7m-gprmc",
					schema:     validation.Schema{Name: "RMC", New: func() interface{} { return &models.GPRMCReading{} }},
				},
				{
					pattern:    "gpvtg",
					collection: "neo7m-gpvtg",
					schema:     validation.Schema{Name: "VTG", New: func() interface{} { return &models.GPVTGReading{} }},
				},
				{
					pattern:    "gpgga",
					collection: "neo7m-gpgga",
					schema:     validation.Schema{Name: "GGA", New: func() interface{} { return &models.GPGGAReading{} }},
				},
				{
					pattern:    "gpgsa",
					collection: "neo7m-gpgsa",
					schema:     validation.Schema{Name: "GSA", New: func() interface{} { return &models.GPGSAReading{} }},
				},
				{
					pattern:    "gpgll",
					collection: "neo7m-gpgll",
					schema:     validation.Schema{Name: "GLL", New: func() interface{} { return &models.GPGLLReading{} }},
				},
				{
					pattern:    "gpgsv",
					collection: "neo7m-gpgsv",
					schema:     validation.Schema{Name: "GSV", New: func() interface{} { return &models.GPGSVReading{} }},
				},
			},
		},
		{
			kind:       "mq9",
			collection: "mq9",
			schema:     validation.Schema{Name: "MQ9", New: func() interface{} { return &models.MQ9Reading{} }},
		},
		{
			kind:       "sen0159",
			collection: "sen0159",
			schema:     validation.Schema{Name: "SEN0159", New: func() interface{} { return &models.SEN0159Reading{} }},
		},
		{
			kind:       "sen0322",
			collection: "sen0322",
			schema:     validation.Schema{Name: "SEN0322", New: func() interface{} { return &models.SEN0322Reading{} }},
		},
	}
}

func newRequestRouter() *RequestRouter {
	router := &RequestRouter{impl: chi.NewRouter()}

	router.impl.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	return router
}

func (router *RequestRouter) addSensorHandlers(srv *server) {
	for _, res := range apiResources() {
		prefix := APIBasePath + "/" + res.kind

		router.Get(prefix, srv.fetchAll(res.collection))
		router.Post(prefix, srv.insert(res.collection, res.schema))
		router.Delete(prefix+"/{id}", srv.deleteByID(res.collection))

		for _, sub := range res.subresources {
			router.Get(prefix+"/"+sub.pattern, srv.fetchAll(sub.collection))
			router.Post(prefix+"/"+sub.pattern, srv.insert(sub.collection, sub.schema))
			router.Delete(prefix+"/"+sub.pattern+"/{id}", srv.deleteByID(sub.collection))
		}
	}
}

func (router *RequestRouter) addDocsHandlers() {
	router.impl.Handle(APIBasePath+"/docs/*", httpSwagger.Handler(
		httpSwagger.URL(APIBasePath+"/docs/doc.json"),
	))

	router.Get(APIBasePath+"/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, APIBasePath+"/docs/index.html", http.StatusMovedPermanently)
	})

	router.Get(APIBasePath+"/docs.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	// API root redirects to the docs webpage
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, APIBasePath+"/docs", http.StatusFound)
	})
}

//addFallbackHandlers makes every unmatched request return the fixed shape
//404 body, including known paths hit with an unrouted method
func (router *RequestRouter) addFallbackHandlers(externalURL string) {
	fallback := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"message":   fmt.Sprintf("404 | Endpoint %s Not Found!", r.URL.Path),
			"url":       externalURL + r.URL.Path,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.impl.NotFound(fallback)
	router.impl.MethodNotAllowed(fallback)
}

func createRequestRouter(log logging.Logger, cfg config.Config, db database.Datastore) *RequestRouter {
	router := newRequestRouter()
	router.impl.Use(requestLogger(log))

	srv := &server{db: db, log: log}

	router.addSensorHandlers(srv)
	router.addDocsHandlers()
	router.addFallbackHandlers(cfg.ExternalURL)

	return router
}

//CreateRouterAndStartServing sets up the sensor API router and starts serving incoming requests
func CreateRouterAndStartServing(log logging.Logger, cfg config.Config, db database.Datastore) {
	router := createRequestRouter(log, cfg, db)

	log.Infof("Starting payload-api on port %s.\n", cfg.ServicePort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServicePort, router.impl))
}
