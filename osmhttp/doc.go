// Package osmhttp implements the two external collaborators spec.md §6
// names: Overpass (way/node geometry) and Nominatim (place-name → area
// lookup). Both share one retry policy — 4 tries, 3s initial delay,
// exponential backoff factor 2, retrying only on a non-200 response or a
// transport error — grounded on original_source/osmrx/helpers/misc.py's
// `retry` decorator and original_source/osmrx/apis_handler/core.py's
// `ApiCore.request_query`, reimplemented with
// github.com/cenkalti/backoff/v4 instead of a hand-rolled sleep loop.
//
// Query-string templating (BuildQuery) is grounded on
// original_source/osmrx/apis_handler/query_builder.py and
// original_source/osmrx/globals/queries.py's per-mode Overpass filters.
package osmhttp
