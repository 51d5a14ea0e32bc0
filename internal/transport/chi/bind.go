package chi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/hearthapi/hearth/internal/domain"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// bindSearchParams parses the property search query string. Absent parameters
// stay at their zero value; malformed numerics are rejected here so the query
// builder only ever sees well typed inputs.
func bindSearchParams(r *http.Request) (query.Params, error) {
	q := r.URL.Query()

	p := query.Params{
		Q:            q.Get("q"),
		Status:       q.Get("status"),
		PropertyType: q.Get("property_type"),
		City:         q.Get("city"),
		Sort:         q.Get("sort"),
	}

	var err error
	if p.MinPrice, err = floatParam(q.Get("min_price"), "min_price"); err != nil {
		return query.Params{}, err
	}
	if p.MaxPrice, err = floatParam(q.Get("max_price"), "max_price"); err != nil {
		return query.Params{}, err
	}
	if p.Beds, err = intParam(q.Get("beds"), "beds"); err != nil {
		return query.Params{}, err
	}
	if p.Baths, err = floatParam(q.Get("baths"), "baths"); err != nil {
		return query.Params{}, err
	}

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		return query.Params{}, err
	}
	if limit != nil {
		p.Limit = *limit
	}

	return p, nil
}

func floatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", name, domain.ErrValidation)
	}
	return &v, nil
}

func intParam(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", name, domain.ErrValidation)
	}
	return &v, nil
}
