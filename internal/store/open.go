package store

import (
	"fmt"

	apperrors "github.com/dbmrq/catsays/internal/errors"
)

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// OpenBackend opens the backend of the given kind at path.
func OpenBackend(kind, path string) (Backend, error) {
	var (
		b   Backend
		err error
	)

	switch kind {
	case KindFile, "":
		b, err = OpenFile(path)
	case KindSQLite:
		b, err = OpenSQLite(path)
	default:
		return nil, apperrors.StoreUnavailable(path, fmt.Errorf("unknown backend %q", kind))
	}

	if err != nil {
		return nil, apperrors.StoreUnavailable(path, err)
	}
	return b, nil
}
