// Package param binds path and query parameters with the oapi-codegen runtime
// binder and reports failures as *Error.
package param

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Error reports a missing or malformed request parameter.
type Error struct {
	ParamName string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.ParamName, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Path binds the required path parameter name.
func Path(r *http.Request, name string) (string, error) {
	var value string
	if err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		return "", &Error{ParamName: name, Err: err}
	}

	if value == "" {
		return "", &Error{ParamName: name, Err: fmt.Errorf("value is required")}
	}

	return value, nil
}

// Query binds the optional query parameter name. A missing parameter yields "".
func Query(r *http.Request, name string) (string, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &value); err != nil {
		return "", &Error{ParamName: name, Err: err}
	}

	return value, nil
}

// Required builds the error returned when a parameter is absent from every location it may be read from.
func Required(name string) error {
	return &Error{ParamName: name, Err: fmt.Errorf("value is required")}
}
