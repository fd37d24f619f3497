package impl

import (
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/errors"
)

// toAppError maps repository sentinels to domain errors. Domain errors pass
// through untouched; anything else becomes a database execution error.
func toAppError(err error, details string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, repository.ErrCollectionNotFound):
		return domainerrors.ErrCollectionNotFound
	case errors.Is(err, repository.ErrTransientLocation):
		return domainerrors.ErrTransientLocation
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
