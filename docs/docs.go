// Package docs registers the Swagger document that is served under /api/v1/docs.
// The document is maintained by hand; keep it in sync with the route table in
// internal/pkg/application/router.go when endpoints or schemas change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/bme680": {
            "get": {
                "tags": [
                    "BME680"
                ],
                "summary": "Get BME680 data",
                "description": "Sensor data from the BME680 environmental sensor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "BME680"
                ],
                "summary": "Insert BME680 data",
                "description": "Sensor data from the BME680 environmental sensor",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.BME680Reading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/bme680/{id}": {
            "delete": {
                "tags": [
                    "BME680"
                ],
                "summary": "Delete BME680 data by id",
                "description": "Sensor data from the BME680 environmental sensor",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/mpu6500": {
            "get": {
                "tags": [
                    "MPU6500"
                ],
                "summary": "Get MPU6500 data",
                "description": "Sensor data from the MPU6500 accelerometer and gyroscope",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "MPU6500"
                ],
                "summary": "Insert MPU6500 data",
                "description": "Sensor data from the MPU6500 accelerometer and gyroscope",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.MPU6500Reading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/mpu6500/{id}": {
            "delete": {
                "tags": [
                    "MPU6500"
                ],
                "summary": "Delete MPU6500 data by id",
                "description": "Sensor data from the MPU6500 accelerometer and gyroscope",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get NEO7M data",
                "description": "Positioning data from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert NEO7M data",
                "description": "Positioning data from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.NEO7MReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete NEO7M data by id",
                "description": "Positioning data from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gprmc": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPRMC data",
                "description": "GPRMC sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPRMC data",
                "description": "GPRMC sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPRMCReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gprmc/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPRMC data by id",
                "description": "GPRMC sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpvtg": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPVTG data",
                "description": "GPVTG sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPVTG data",
                "description": "GPVTG sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPVTGReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpvtg/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPVTG data by id",
                "description": "GPVTG sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgga": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPGGA data",
                "description": "GPGGA sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPGGA data",
                "description": "GPGGA sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPGGAReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgga/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPGGA data by id",
                "description": "GPGGA sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgsa": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPGSA data",
                "description": "GPGSA sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPGSA data",
                "description": "GPGSA sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPGSAReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgsa/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPGSA data by id",
                "description": "GPGSA sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgll": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPGLL data",
                "description": "GPGLL sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPGLL data",
                "description": "GPGLL sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPGLLReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgll/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPGLL data by id",
                "description": "GPGLL sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgsv": {
            "get": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Get GPGSV data",
                "description": "GPGSV sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Insert GPGSV data",
                "description": "GPGSV sentences from the NEO-7M GPS module",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.GPGSVReading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/neo7m/gpgsv/{id}": {
            "delete": {
                "tags": [
                    "NEO-7M"
                ],
                "summary": "Delete GPGSV data by id",
                "description": "GPGSV sentences from the NEO-7M GPS module",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/mq9": {
            "get": {
                "tags": [
                    "MQ9"
                ],
                "summary": "Get MQ9 data",
                "description": "Combustible gas data from the MQ-9 sensor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "MQ9"
                ],
                "summary": "Insert MQ9 data",
                "description": "Combustible gas data from the MQ-9 sensor",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.MQ9Reading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/mq9/{id}": {
            "delete": {
                "tags": [
                    "MQ9"
                ],
                "summary": "Delete MQ9 data by id",
                "description": "Combustible gas data from the MQ-9 sensor",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/sen0159": {
            "get": {
                "tags": [
                    "SEN0159"
                ],
                "summary": "Get SEN0159 data",
                "description": "CO2 data from the SEN0159 sensor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "SEN0159"
                ],
                "summary": "Insert SEN0159 data",
                "description": "CO2 data from the SEN0159 sensor",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.SEN0159Reading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/sen0159/{id}": {
            "delete": {
                "tags": [
                    "SEN0159"
                ],
                "summary": "Delete SEN0159 data by id",
                "description": "CO2 data from the SEN0159 sensor",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/sen0322": {
            "get": {
                "tags": [
                    "SEN0322"
                ],
                "summary": "Get SEN0322 data",
                "description": "Oxygen data from the SEN0322 sensor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "The stored readings",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": true
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "post": {
                "tags": [
                    "SEN0322"
                ],
                "summary": "Insert SEN0322 data",
                "description": "Oxygen data from the SEN0322 sensor",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/models.SEN0322Reading"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Data added successfully"
                    },
                    "400": {
                        "description": "Malformed body or schema violations",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/sen0322/{id}": {
            "delete": {
                "tags": [
                    "SEN0322"
                ],
                "summary": "Delete SEN0322 data by id",
                "description": "Oxygen data from the SEN0322 sensor",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The deleted document or a not-found outcome",
                        "schema": {
                            "$ref": "#/definitions/application.DeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id format",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        }
    },
    "definitions": {
        "models.BME680Reading": {
            "type": "object",
            "required": [
                "temperature",
                "humidity",
                "pressure",
                "gas_resistance"
            ],
            "properties": {
                "temperature": {
                    "type": "number"
                },
                "humidity": {
                    "type": "number",
                    "minimum": 0
                },
                "pressure": {
                    "type": "number",
                    "minimum": 0
                },
                "gas_resistance": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "models.MPU6500Reading": {
            "type": "object",
            "required": [
                "acceleration_x",
                "acceleration_y",
                "acceleration_z",
                "gyroscope_x",
                "gyroscope_y",
                "gyroscope_z"
            ],
            "properties": {
                "acceleration_x": {
                    "type": "number"
                },
                "acceleration_y": {
                    "type": "number"
                },
                "acceleration_z": {
                    "type": "number"
                },
                "gyroscope_x": {
                    "type": "number"
                },
                "gyroscope_y": {
                    "type": "number"
                },
                "gyroscope_z": {
                    "type": "number"
                }
            }
        },
        "models.NEO7MReading": {
            "type": "object",
            "required": [
                "latitude",
                "longitude",
                "altitude",
                "speed",
                "date",
                "time"
            ],
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "altitude": {
                    "type": "number",
                    "minimum": 0
                },
                "speed": {
                    "type": "number"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "models.GPRMCReading": {
            "type": "object",
            "required": [
                "valid",
                "latitude",
                "longitude",
                "speed",
                "date"
            ],
            "properties": {
                "valid": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "speed": {
                    "type": "number",
                    "minimum": 0
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "models.GPVTGReading": {
            "type": "object",
            "required": [
                "true_track_degress",
                "speed_kph"
            ],
            "properties": {
                "true_track_degress": {
                    "type": "number"
                },
                "speed_kph": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "models.GPGGAReading": {
            "type": "object",
            "required": [
                "latitude",
                "longitude",
                "altitude",
                "fix_quality",
                "satelites",
                "hdop",
                "height_geoid",
                "time"
            ],
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "altitude": {
                    "type": "number",
                    "minimum": 0
                },
                "fix_quality": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "satelites": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 18
                },
                "hdop": {
                    "type": "number"
                },
                "height_geoid": {
                    "type": "number"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "models.GPGSAReading": {
            "type": "object",
            "required": [
                "mode",
                "fix_type",
                "satelites",
                "pdop",
                "hdop",
                "vdop"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "A",
                        "M"
                    ]
                },
                "fix_type": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "satelites": {
                    "type": "array",
                    "items": {
                        "type": "number",
                        "minimum": 0,
                        "maximum": 12
                    }
                },
                "pdop": {
                    "type": "number"
                },
                "hdop": {
                    "type": "number"
                },
                "vdop": {
                    "type": "number"
                }
            }
        },
        "models.GPGLLReading": {
            "type": "object",
            "required": [
                "mode",
                "latitude",
                "longitude",
                "time"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "A",
                        "V"
                    ]
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "models.GSVSatellite": {
            "type": "object",
            "required": [
                "prn",
                "elevation",
                "azimuth",
                "snr"
            ],
            "properties": {
                "prn": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 12
                },
                "elevation": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 90
                },
                "azimuth": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 359
                },
                "snr": {
                    "type": "number"
                }
            }
        },
        "models.GPGSVReading": {
            "type": "object",
            "required": [
                "total_messages",
                "message_number",
                "satelites"
            ],
            "properties": {
                "total_messages": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "message_number": {
                    "type": "integer",
                    "enum": [
                        1,
                        2,
                        3
                    ]
                },
                "satelites": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.GSVSatellite"
                    }
                }
            }
        },
        "models.MQ9Reading": {
            "type": "object",
            "required": [
                "lpg_ratio",
                "co_ratio",
                "ch4_ratio"
            ],
            "properties": {
                "lpg_ratio": {
                    "type": "number",
                    "minimum": 0
                },
                "co_ratio": {
                    "type": "number",
                    "minimum": 0
                },
                "ch4_ratio": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "models.SEN0159Reading": {
            "type": "object",
            "required": [
                "co2_ppm"
            ],
            "properties": {
                "co2_ppm": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "models.SEN0322Reading": {
            "type": "object",
            "required": [
                "oxygen_percentage"
            ],
            "properties": {
                "oxygen_percentage": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 100
                }
            }
        },
        "validation.DetailContext": {
            "type": "object",
            "properties": {
                "value": {},
                "label": {
                    "type": "string"
                },
                "key": {}
            }
        },
        "validation.Detail": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "path": {
                    "type": "array",
                    "items": {}
                },
                "type": {
                    "type": "string"
                },
                "context": {
                    "$ref": "#/definitions/validation.DetailContext"
                }
            }
        },
        "validation.ErrorResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validation.Detail"
                    }
                }
            }
        },
        "application.SyntaxError": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                }
            }
        },
        "application.NotFoundResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "application.DeleteResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "document": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Payload API",
	Description:      "REST ingestion API for environmental and positioning sensor readings",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
