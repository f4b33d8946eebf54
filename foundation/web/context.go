package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the gin context together with the request context that
// middleware may have enriched (auth claims live in Ctx, not in gin).
type Context struct {
	*gin.Context
	Ctx context.Context

	invalidParams  []string
	invalidQueries []string
}

// BindFunc binds the request body (json or form) into obj and checks that the
// named struct fields were actually provided. Field names are the Go names.
func (c *Context) BindFunc(obj interface{}, required ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, name := range required {
		for _, field := range strings.Split(name, ",") {
			f := v.FieldByName(strings.TrimSpace(field))
			if !f.IsValid() {
				continue
			}
			if f.Kind() == reflect.Ptr && f.IsNil() {
				missing = append(missing, field)
			}
			if f.Kind() == reflect.String && f.String() == "" {
				missing = append(missing, field)
			}
		}
	}
	if len(missing) > 0 {
		return NewRequestError(errors.Errorf("required fields: %s", strings.Join(missing, ", ")), http.StatusBadRequest)
	}

	return nil
}

// GetParam reads a path parameter as the requested kind. Failures are
// collected and reported by ValidParam so call sites stay short.
func (c *Context) GetParam(kind reflect.Kind, key string) interface{} {
	raw := c.Param(key)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.invalidParams = append(c.invalidParams, key)
			return 0
		}
		return v
	case reflect.String:
		return raw
	default:
		c.invalidParams = append(c.invalidParams, key)
		return nil
	}
}

// ValidParam reports the path parameters GetParam could not convert.
func (c *Context) ValidParam() error {
	if len(c.invalidParams) == 0 {
		return nil
	}
	return NewRequestError(errors.Errorf("invalid params: %s", strings.Join(c.invalidParams, ", ")), http.StatusBadRequest)
}

// GetQueryFunc reads an optional query parameter as the requested kind and
// returns a typed pointer, or nil when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, key string) interface{} {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.invalidQueries = append(c.invalidQueries, key)
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.invalidQueries = append(c.invalidQueries, key)
			return nil
		}
		return &v
	case reflect.String:
		return &raw
	default:
		c.invalidQueries = append(c.invalidQueries, key)
		return nil
	}
}

// ValidQuery reports the query parameters GetQueryFunc could not convert.
func (c *Context) ValidQuery() error {
	if len(c.invalidQueries) == 0 {
		return nil
	}
	return NewRequestError(errors.Errorf("invalid query params: %s", strings.Join(c.invalidQueries, ", ")), http.StatusBadRequest)
}

// Respond sends data as json with the given status code.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError translates err into the response envelope. Errors without a
// request status are reported as internal.
func (c *Context) RespondError(err error) error {
	status := http.StatusInternalServerError
	if re, ok := IsRequestError(err); ok {
		status = re.Status
	}

	c.JSON(status, map[string]interface{}{
		"error":  fmt.Sprintf("%v", err),
		"status": false,
	})
	return nil
}
