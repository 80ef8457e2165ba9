package osmhttp

import (
	"fmt"

	"github.com/amauryval/osmrx-go/errs"
)

func errBadStatus(url string, code int) error {
	return fmt.Errorf("%w: %s returned status %d", errs.ErrUpstreamUnavailable, url, code)
}

func errNoCandidates(query string) error {
	return fmt.Errorf("%w: nominatim returned no candidates for %q", errs.ErrUpstreamMalformed, query)
}
