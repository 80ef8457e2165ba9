package interpolate

import (
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

func errInvalidFactor(k int) error {
	return fmt.Errorf("%w: interpolation factor %d must be >= 1", errs.ErrInvalidArgument, k)
}
