package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	. "github.com/ttpr0/go-mosp/util"
	"golang.org/x/exp/slog"
)

type none struct{}

var request_validate = validator.New()

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, err
	}
	return req, nil
}

// Validates the struct tags of req, non-struct requests are always valid.
func ValidateRequest[T any](req T) error {
	if reflect.Indirect(reflect.ValueOf(req)).Kind() != reflect.Struct {
		return nil
	}
	err := request_validate.Struct(req)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		msgs := make([]string, 0, len(invalid))
		for _, e := range invalid {
			msgs = append(msgs, fmt.Sprintf("%v failed on %v", e.Field(), e.Tag()))
		}
		return fmt.Errorf("invalid request: %v", msgs)
	}
	return err
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

//**********************************************************
// results
//**********************************************************

type Result struct {
	result any
	status int
	// set for results that are written as is
	content_type string
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

// Already encoded response body.
func Raw(content_type string, data []byte) Result {
	return Result{
		result:       data,
		status:       http.StatusOK,
		content_type: content_type,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func NotFound[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusNotFound,
	}
}

func Unprocessable[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusUnprocessableEntity,
	}
}

func InternalError[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusInternalServerError,
	}
}

func ServiceUnavailable[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusServiceUnavailable,
	}
}

func GatewayTimeout[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusGatewayTimeout,
	}
}

func (self Result) write(w http.ResponseWriter, path string) {
	if self.status != http.StatusOK {
		WriteResponse(w, NewErrorResponse(path, self.result), self.status)
		return
	}
	if self.content_type != "" {
		w.Header().Set("Content-Type", self.content_type)
		w.WriteHeader(self.status)
		w.Write(self.result.([]byte))
		return
	}
	WriteResponse(w, self.result, self.status)
}

//**********************************************************
// handler mapping
//**********************************************************

func MapPost[F any](app chi.Router, path string, handler func(context.Context, F) Result) {
	app.Post(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err == nil {
			err = ValidateRequest(body)
		}
		if err != nil {
			slog.Error("failed POST " + path + ": " + err.Error())
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusBadRequest)
			return
		}
		res := handler(r.Context(), body)
		if res.status != http.StatusOK {
			slog.Error(fmt.Sprintf("failed POST %v: %v", path, res.result))
		} else {
			slog.Info("successfully finished POST " + path)
		}
		res.write(w, path)
	})
}

func MapGet[F any](app chi.Router, path string, handler func(context.Context, F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Triple[int, string, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		kind := field.Type.Kind()
		if kind == reflect.Pointer {
			kind = field.Type.Elem().Kind()
		}
		switch kind {
		case reflect.Bool:
			fields.Add(MakeTriple(i, tag, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, tag, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, tag, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, tag, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, tag, reflect.String))
		}
	}
	app.Get(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			index := field.A
			name := field.B
			typ := field.C
			value := query.Get(name)
			if value == "" {
				continue
			}
			f := t.Field(index)
			// pointer fields are nil unless the parameter is given
			if f.Kind() == reflect.Pointer {
				ptr := reflect.New(f.Type().Elem())
				f.Set(ptr)
				f = ptr.Elem()
			}
			var err error
			switch typ {
			case reflect.Bool:
				var v bool
				v, err = strconv.ParseBool(value)
				f.SetBool(v)
			case reflect.Int:
				var v int64
				v, err = strconv.ParseInt(value, 10, 64)
				f.SetInt(v)
			case reflect.Uint:
				var v uint64
				v, err = strconv.ParseUint(value, 10, 64)
				f.SetUint(v)
			case reflect.Float64:
				var v float64
				v, err = strconv.ParseFloat(value, 64)
				f.SetFloat(v)
			case reflect.String:
				f.SetString(value)
			}
			if err != nil {
				WriteResponse(w, NewErrorResponse(path, fmt.Sprintf("invalid value for %v: %v", name, value)), http.StatusBadRequest)
				return
			}
		}
		value := t.Interface().(F)
		if err := ValidateRequest(value); err != nil {
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusBadRequest)
			return
		}
		res := handler(r.Context(), value)
		if res.status != http.StatusOK {
			slog.Error(fmt.Sprintf("failed GET %v: %v", path, res.result))
		} else {
			slog.Info("successfully finished GET " + path)
		}
		res.write(w, path)
	})
}
