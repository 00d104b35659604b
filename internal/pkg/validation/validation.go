package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//Detail describes a single violated field within a rejected payload
type Detail struct {
	Message string         `json:"message"`
	Path    []interface{}  `json:"path"`
	Type    string         `json:"type"`
	Context *DetailContext `json:"context,omitempty"`
}

//DetailContext carries the offending value alongside its field label
type DetailContext struct {
	Value interface{} `json:"value"`
	Label string      `json:"label"`
	Key   interface{} `json:"key"`
}

//ErrorResponse is the client facing body for every validation failure
type ErrorResponse struct {
	Name    string   `json:"name"`
	Details []Detail `json:"details"`
}

//Schema binds a sensor kind to the document shape it accepts. Schemas are
//selected once at route registration time, never re-derived per request.
type Schema struct {
	//Name prefixes the error response, e.g. "BME680 Validation Error"
	Name string
	//New returns a pointer to a fresh instance of the kind's document type
	New func() interface{}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations against json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

//Validate checks the raw payload against the schema and returns nil on
//acceptance. On rejection it returns every violated field in one pass; it
//never stops at the first failure and it never panics the caller.
func (s Schema) Validate(data json.RawMessage) *ErrorResponse {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	target := s.New()
	if err := json.Unmarshal(data, target); err != nil {
		return &ErrorResponse{
			Name:    s.Name + " Validation Error",
			Details: []Detail{detailFromDecodeError(err)},
		}
	}

	details := []Detail{}

	if err := validate.Struct(target); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return &ErrorResponse{
				Name:    s.Name + " Validation Error",
				Details: []Detail{{Message: err.Error(), Path: []interface{}{}}},
			}
		}

		for _, fieldError := range fieldErrors {
			details = append(details, detailFromFieldError(fieldError))
		}
	}

	details = append(details, unknownKeyDetails(data, reflect.TypeOf(target), nil)...)

	if len(details) == 0 {
		return nil
	}

	return &ErrorResponse{Name: s.Name + " Validation Error", Details: details}
}

//unknownKeyDetails reports every key in the payload that the schema does not
//declare, at any nesting depth. Undeclared keys are violations, not
//passthrough data.
func unknownKeyDetails(data json.RawMessage, t reflect.Type, path []interface{}) []Detail {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		object := map[string]json.RawMessage{}
		if err := json.Unmarshal(data, &object); err != nil {
			return nil
		}

		declared := map[string]reflect.Type{}
		for i := 0; i < t.NumField(); i++ {
			name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				continue
			}
			declared[name] = t.Field(i).Type
		}

		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		details := []Detail{}
		for _, key := range keys {
			fieldType, ok := declared[key]
			if !ok {
				details = append(details, Detail{
					Message: fmt.Sprintf("%q is not allowed", key),
					Path:    appendPath(path, key),
					Type:    "object.unknown",
					Context: &DetailContext{Value: rawValue(object[key]), Label: key, Key: key},
				})
				continue
			}
			details = append(details, unknownKeyDetails(object[key], fieldType, appendPath(path, key))...)
		}
		return details

	case reflect.Slice, reflect.Array:
		elements := []json.RawMessage{}
		if err := json.Unmarshal(data, &elements); err != nil {
			return nil
		}

		details := []Detail{}
		for i, element := range elements {
			details = append(details, unknownKeyDetails(element, t.Elem(), appendPath(path, i))...)
		}
		return details
	}

	return nil
}

func appendPath(path []interface{}, segment interface{}) []interface{} {
	extended := make([]interface{}, 0, len(path)+1)
	extended = append(extended, path...)
	return append(extended, segment)
}

func rawValue(data json.RawMessage) interface{} {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return string(data)
	}
	return value
}

//ParseID checks that the supplied string is a syntactically valid store
//identifier and converts it. The check is purely syntactic; existence is the
//store's concern. Malformed identifiers short circuit with a client error
//before any store access is attempted.
func ParseID(id string) (primitive.ObjectID, *ErrorResponse) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &ErrorResponse{
			Name: "ID Validation Error",
			Details: []Detail{
				{
					Message: "\"id\" must be a valid MongoDB ObjectId.",
					Path:    []interface{}{"id"},
					Context: &DetailContext{Value: id, Label: "id", Key: "id"},
				},
			},
		}
	}

	return objectID, nil
}

func detailFromFieldError(fieldError validator.FieldError) Detail {
	label := fieldError.Field()
	path := pathFromNamespace(fieldError.Namespace())

	var key interface{}
	if len(path) > 0 {
		key = path[len(path)-1]
	}

	detail := Detail{
		Path:    path,
		Context: &DetailContext{Value: fieldError.Value(), Label: label, Key: key},
	}

	switch fieldError.Tag() {
	case "required":
		detail.Message = fmt.Sprintf("%q is required", label)
		detail.Type = "any.required"
		detail.Context.Value = nil
	case "gte":
		detail.Message = fmt.Sprintf("%q must be greater than or equal to %s", label, fieldError.Param())
		detail.Type = "number.min"
	case "lte":
		detail.Message = fmt.Sprintf("%q must be less than or equal to %s", label, fieldError.Param())
		detail.Type = "number.max"
	case "oneof":
		allowed := strings.Join(strings.Fields(fieldError.Param()), ", ")
		detail.Message = fmt.Sprintf("%q must be one of [%s]", label, allowed)
		detail.Type = "any.only"
	default:
		detail.Message = fmt.Sprintf("%q fails the %s constraint", label, fieldError.Tag())
		detail.Type = fieldError.Tag()
	}

	return detail
}

func detailFromDecodeError(err error) Detail {
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		label := typeError.Field
		if label == "" {
			label = "data"
		}

		path := []interface{}{}
		for _, segment := range strings.Split(label, ".") {
			if segment != "" {
				path = append(path, segment)
			}
		}

		var key interface{}
		if len(path) > 0 {
			key = path[len(path)-1]
		}

		expected := jsonTypeName(typeError.Type)
		return Detail{
			Message: fmt.Sprintf("%q must be a %s", label, expected),
			Path:    path,
			Type:    expected + ".base",
			Context: &DetailContext{Value: typeError.Value, Label: label, Key: key},
		}
	}

	return Detail{Message: err.Error(), Path: []interface{}{}}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "number"
	}
}

//pathFromNamespace turns a namespace such as
//"GPGSVReading.satelites[2].prn" into the path [satelites 2 prn]
func pathFromNamespace(namespace string) []interface{} {
	segments := strings.Split(namespace, ".")
	if len(segments) > 0 {
		// drop the root struct name
		segments = segments[1:]
	}

	path := []interface{}{}
	for _, segment := range segments {
		name := segment
		for {
			open := strings.Index(name, "[")
			if open < 0 {
				if name != "" {
					path = append(path, name)
				}
				break
			}

			if open > 0 {
				path = append(path, name[:open])
			}

			closing := strings.Index(name, "]")
			if closing < 0 {
				break
			}

			if index, err := strconv.Atoi(name[open+1 : closing]); err == nil {
				path = append(path, index)
			}

			name = name[closing+1:]
		}
	}

	return path
}
