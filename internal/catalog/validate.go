package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a catalog file and returns every problem found.
func Validate(f *File) []error {
	var errs []error

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []error{goerr.Wrap(err, "catalog validation failed")}
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}

	sectionKeys := make(map[string]bool)
	itemKeys := make(map[domain.ItemKey]string)
	for _, s := range f.Sections {
		if s.Key != "" && sectionKeys[s.Key] {
			errs = append(errs, goerr.New("duplicate section key", goerr.V("key", s.Key)))
		}
		sectionKeys[s.Key] = true

		for i, it := range s.Items {
			if strings.ContainsAny(it.ID, " \t\n") {
				errs = append(errs, goerr.New("item id must not contain whitespace",
					goerr.V("id", it.ID), goerr.V("section", s.Key)))
			}
			key := domain.ItemKey(it.ID)
			if key == "" {
				key = domain.ComposeKey(s.Key, i)
			}
			if prev, ok := itemKeys[key]; ok {
				errs = append(errs, goerr.New("duplicate item key",
					goerr.V("key", string(key)), goerr.V("section", s.Key), goerr.V("first_section", prev)))
				continue
			}
			itemKeys[key] = s.Key
		}
	}

	riskIDs := make(map[string]bool)
	for _, r := range f.Risks {
		if r.ID != "" && riskIDs[r.ID] {
			errs = append(errs, goerr.New("duplicate risk id", goerr.V("id", r.ID)))
		}
		riskIDs[r.ID] = true
	}

	return errs
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "File.")
	msg := fmt.Sprintf("%s failed %q", field, fe.Tag())
	if fe.Param() != "" {
		msg += fmt.Sprintf(" (%s)", fe.Param())
	}
	return goerr.New(msg, goerr.V("field", field), goerr.V("value", fe.Value()))
}

func joinInvalid(path string, errs []error) error {
	return goerr.Wrap(errors.Join(errs...), "invalid catalog file", goerr.V("path", path))
}
