package store

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	storeerrors "github.com/conneroisu/storecraft/internal/errors"
)

// ReservedSlugs may not be used by custom pages.
var ReservedSlugs = map[string]bool{"index": true}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidSlug reports whether s is usable as an output file name.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return ValidSlug(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a configuration.
func Validate(cfg *Configuration) error {
	if cfg == nil {
		return storeerrors.NewValidationError(storeerrors.CodeInvalidStore, "configuration is nil")
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return CheckSlugs(cfg.Pages)
}

// CheckSlugs reports the first duplicate or reserved slug among published
// pages. Unpublished pages never produce files and are ignored.
func CheckSlugs(pages []CustomPage) error {
	seen := make(map[string]string, len(pages))
	for i, p := range pages {
		if !p.Published {
			continue
		}
		if !ValidSlug(p.Slug) {
			return storeerrors.NewIntegrityError(storeerrors.CodeInvalidSlug,
				fmt.Sprintf("page %q has invalid slug %q", p.Title, p.Slug)).
				WithField(fmt.Sprintf("pages[%d].slug", i))
		}
		if ReservedSlugs[p.Slug] {
			return storeerrors.NewSlugConflictError(p.Slug, pageRef(p, i), "home").
				WithField(fmt.Sprintf("pages[%d].slug", i))
		}
		if prev, ok := seen[p.Slug]; ok {
			return storeerrors.NewSlugConflictError(p.Slug, prev, pageRef(p, i)).
				WithField(fmt.Sprintf("pages[%d].slug", i))
		}
		seen[p.Slug] = pageRef(p, i)
	}

	return nil
}

func pageRef(p CustomPage, i int) string {
	if p.ID != "" {
		return p.ID
	}

	return fmt.Sprintf("#%d", i)
}

// convertValidationError normalizes validator errors into store errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())

		se := storeerrors.NewValidationError(storeerrors.CodeInvalidStore, msg).WithField(field)
		se.Cause = err

		return se
	}

	se := storeerrors.NewValidationError(storeerrors.CodeInvalidStore, err.Error())
	se.Cause = err

	return se
}

// fieldName renders "Configuration.Pages[0].Slug" as "pages[0].slug".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}

	return strings.Join(parts, ".")
}
