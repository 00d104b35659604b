package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

//Config holds the process configuration that is read from the environment at startup
type Config struct {
	ServicePort string

	MongoDBHost  string
	MongoDBPort  string
	DatabaseName string

	MQTTHost     string
	MQTTPort     string
	MQTTUsername string
	MQTTPassword string

	ExternalURL string
}

//FromEnvironment loads the configuration from the process environment,
//falling back to local defaults for anything that is not set. An optional
//.env file in the working directory is honoured if present.
func FromEnvironment() Config {
	godotenv.Load()

	cfg := Config{
		ServicePort:  getEnv("SERVICE_PORT", "8880"),
		MongoDBHost:  getEnv("MONGODB_HOST", "localhost"),
		MongoDBPort:  getEnv("MONGODB_PORT", "27017"),
		DatabaseName: getEnv("DATABASE_NAME", "payload-api"),
		MQTTHost:     getEnv("MQTT_HOST", "localhost"),
		MQTTPort:     getEnv("MQTT_PORT", "1883"),
		MQTTUsername: os.Getenv("MQTT_USERNAME"),
		MQTTPassword: os.Getenv("MQTT_PASSWORD"),
	}

	cfg.ExternalURL = getEnv("EXTERNAL_URL", fmt.Sprintf("http://127.0.0.1:%s", cfg.ServicePort))

	return cfg
}

//MongoDBURI returns the connection string for the document store
func (cfg Config) MongoDBURI() string {
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDBHost, cfg.MongoDBPort)
}

//BrokerURI returns the connection string for the message bus
func (cfg Config) BrokerURI() string {
	return fmt.Sprintf("tcp://%s:%s", cfg.MQTTHost, cfg.MQTTPort)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
