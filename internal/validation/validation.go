package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	v1 "vinr.eu/launchpad/api/launchpad/v1"
)

const (
	LocBody = "body"
	LocPath = "path"

	TypeMissing = "missing"
	TypeInvalid = "type_error"
	TypeSyntax  = "json_invalid"
)

var registerOnce sync.Once

// UseJSONNames makes gin's validator report fields by their json tag.
// Safe to call more than once.
func UseJSONNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FromBindError converts an error from gin's JSON binding into field errors
// located under "body".
func FromBindError(err error) []v1.FieldError {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make([]v1.FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, fromFieldError(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := LocBody
		if typeErr.Field != "" {
			loc += "." + typeErr.Field
		}
		return []v1.FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Type: TypeInvalid,
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []v1.FieldError{{
			Loc:  LocBody,
			Msg:  fmt.Sprintf("invalid JSON at offset %d: %v", syntaxErr.Offset, syntaxErr),
			Type: TypeSyntax,
		}}
	}

	if errors.Is(err, io.EOF) {
		return []v1.FieldError{{Loc: LocBody, Msg: "field required", Type: TypeMissing}}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return []v1.FieldError{{Loc: LocBody, Msg: "unexpected end of JSON input", Type: TypeSyntax}}
	}

	return []v1.FieldError{{Loc: LocBody, Msg: err.Error(), Type: TypeInvalid}}
}

// FromParamError converts a path binding failure. Other errors yield nil.
func FromParamError(err error) []v1.FieldError {
	var pe *v1.ParamError
	if !errors.As(err, &pe) {
		return nil
	}
	return []v1.FieldError{{
		Loc:  LocPath + "." + pe.Param,
		Msg:  pe.Err.Error(),
		Type: TypeInvalid,
	}}
}

func fromFieldError(fe validator.FieldError) v1.FieldError {
	loc := fe.Namespace()
	// Drop the root struct name.
	if i := strings.IndexByte(loc, '.'); i >= 0 {
		loc = loc[i+1:]
	}
	loc = LocBody + "." + loc

	if fe.Tag() == "required" {
		return v1.FieldError{Loc: loc, Msg: "field required", Type: TypeMissing}
	}
	return v1.FieldError{
		Loc:  loc,
		Msg:  fmt.Sprintf("failed on the '%s' validation", fe.Tag()),
		Type: fe.Tag(),
	}
}
