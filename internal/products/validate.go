package products

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// decodeFields reads a product payload and type-checks it. Extra keys are
// ignored; there are no range or length checks.
func decodeFields(w http.ResponseWriter, r *http.Request) (Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Fields{}, errInvalidProduct
		}
		return Fields{}, bodyError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Fields{}, bodyError(err)
	}

	return validateFields(raw)
}

// bodyError maps a decode failure. A nil err means trailing data after the
// first JSON value.
func bodyError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return &PayloadTooLargeError{Limit: mbe.Limit}
	}
	return errMalformedJSON
}

func validateFields(raw any) (Fields, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Fields{}, errInvalidProduct
	}

	name, okName := obj["name"].(string)
	description, okDesc := obj["description"].(string)
	price, okPrice := obj["price"].(float64)
	category, okCat := obj["category"].(string)
	inStock, okStock := obj["inStock"].(bool)

	if !okName || !okDesc || !okPrice || !okCat || !okStock {
		return Fields{}, errInvalidProduct
	}

	return Fields{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		InStock:     inStock,
	}, nil
}
