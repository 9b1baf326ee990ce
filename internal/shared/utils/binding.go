package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// StrictBindJSON decodes the request body into obj and rejects any field
// the target struct does not declare. Mutations must fail on undeclared
// arguments before any store access, which gin's ShouldBindJSON (silently
// dropping unknown keys) cannot do.
func StrictBindJSON(c *gin.Context, obj interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(obj); err != nil {
		if err == io.EOF {
			return fmt.Errorf("request body is empty")
		}
		// json: unknown field "xyz" -> too many arguments: xyz
		if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
			field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
			return fmt.Errorf("too many arguments: %s", field)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}

	// A second document in the body is as undeclared as an unknown field
	if dec.More() {
		return fmt.Errorf("too many arguments: unexpected trailing data")
	}

	return nil
}

// AllowedQueryParams verifies the request carries no query parameters
// outside the declared set and returns the offending names otherwise.
func AllowedQueryParams(c *gin.Context, allowed ...string) []string {
	permitted := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		permitted[name] = true
	}

	var unsupported []string
	for name := range c.Request.URL.Query() {
		if !permitted[name] {
			unsupported = append(unsupported, name)
		}
	}
	return unsupported
}
