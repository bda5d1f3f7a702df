package service

import (
	"context"
	"errors"

	"fleetdesk/cmd/internal/utils"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// validateRequest trims req in place and runs its struct tags.
func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	utils.Sanitize(req)
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verr := apierror.FromValidationError(err); verr != nil {
		return verr
	}

	log.Errorf("failed to validate request: %v", err)
	return apierror.InternalServerError
}

// fetchPage resolves the sort field against sortable and runs fetch with the resulting query.
func fetchPage[E any](req paging.Request, sortable map[string]string, what string,
	fetch func(q paging.Query) ([]*E, int64, error),
) ([]*E, int64, apierror.ErrorResponse) {
	q, ok := req.Resolve(sortable)
	if !ok {
		return nil, 0, apierror.ValidationFailed("Cannot sort %s by '%s'", what, req.SortBy)
	}

	records, total, err := fetch(q)
	if err != nil {
		log.Errorf("failed to fetch %s page: %v", what, err)
		return nil, 0, apierror.InternalServerError
	}
	return records, total, nil
}

func mapRecords[E, R any](records []*E, fn func(*E) R) []R {
	resp := make([]R, len(records))
	for i, record := range records {
		resp[i] = fn(record)
	}
	return resp
}

// storeError turns a failed write into an outcome. A unique index violation
// means a concurrent writer took the key after our own check passed.
func storeError(what string, err error) apierror.ErrorResponse {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.DuplicateKey("A %s with the same tax code already exists", what)
	}

	log.Errorf("failed to save %s: %v", what, err)
	return apierror.InternalServerError
}

// deleteRecord confirms the record exists before removing it.
// reference names a kind of record that may still point at the one being deleted.
type reference struct {
	kind   string
	exists func(context.Context, int) (bool, error)
}

func deleteRecord(ctx context.Context, what string, id int,
	exists func(context.Context, int) (bool, error),
	remove func(context.Context, int) error,
	refs ...reference,
) apierror.ErrorResponse {
	found, err := exists(ctx, id)
	if err != nil {
		log.Errorf("failed to check %s %d: %v", what, id, err)
		return apierror.InternalServerError
	}

	if !found {
		return apierror.NotFound("No %s found with id %d", what, id)
	}

	for _, ref := range refs {
		used, err := ref.exists(ctx, id)
		if err != nil {
			log.Errorf("failed to check %s referencing %s %d: %v", ref.kind, what, id, err)
			return apierror.InternalServerError
		}

		if used {
			return inUseError(what, id, ref.kind)
		}
	}

	if err = remove(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return inUseError(what, id, "other")
		}

		log.Errorf("failed to delete %s %d: %v", what, id, err)
		return apierror.InternalServerError
	}

	log.Infof("deleted %s %d", what, id)
	return nil
}

func inUseError(what string, id int, kind string) apierror.ErrorResponse {
	return apierror.ValidationFailed("The %s %d is still referenced by %s records", what, id, kind)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
