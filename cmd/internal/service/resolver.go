package service

import (
	"context"

	"fleetdesk/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// resolveRef loads the record a foreign key points at. A nil id resolves to
// nil, clearing optional references. A dangling id is a ReferenceNotFound.
func resolveRef[T any](ctx context.Context, what string, id *int,
	find func(context.Context, int) (*T, error),
) (*T, apierror.ErrorResponse) {
	if id == nil {
		return nil, nil
	}

	record, err := find(ctx, *id)
	if err != nil {
		log.Errorf("failed to resolve %s %d: %v", what, *id, err)
		return nil, apierror.InternalServerError
	}

	if record == nil {
		return nil, apierror.ReferenceNotFound("Referenced %s with id %d does not exist", what, *id)
	}
	return record, nil
}

// resolveRefs batch loads the records behind ids, keyed by id. It serves
// read-side denormalization, so dangling ids are simply absent from the result.
func resolveRefs[T any](ctx context.Context, ids []int,
	load func(context.Context, []int) ([]*T, error),
	idOf func(*T) int,
) (map[int]*T, error) {
	index := make(map[int]*T, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	records, err := load(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		index[idOf(record)] = record
	}
	return index, nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
