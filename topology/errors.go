package topology

import (
	"errors"
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

// Sentinel errors returned by the cleaner.
var (
	// ErrDuplicateLineID indicates two RawLines in one batch share an ID.
	ErrDuplicateLineID = errors.New("topology: duplicate line id in batch")

	// ErrDuplicatePointID indicates two RawPoints in one batch share an ID.
	ErrDuplicatePointID = errors.New("topology: duplicate point id in batch")
)

func errDegenerateLine(id int) error {
	return fmt.Errorf("%w: line %d has fewer than two coordinates", errs.ErrGeometryDegenerate, id)
}

func errEmptyLineSet() error {
	return fmt.Errorf("%w: empty input line set", errs.ErrInvalidArgument)
}

func errNoHostLine(pointID int) error {
	return fmt.Errorf("%w: no host line found for point %d", errs.ErrInvalidArgument, pointID)
}
