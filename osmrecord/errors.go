package osmrecord

import (
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

func errMalformed(reason string) error {
	return fmt.Errorf("%w: %s", errs.ErrUpstreamMalformed, reason)
}
