package commands

import (
	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
)

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
