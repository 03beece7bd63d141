// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers
never import chi directly for reading parameters.
*/
package requestutil

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

/*
IntParam retrieves a named URL parameter as an integer identifier.

Returns:
  - int: the parsed value
  - bool: false when the parameter is missing or not an integer
*/
func IntParam(request *http.Request, name string) (int, bool) {
	return parseInt(chi.URLParam(request, name))
}

/*
IntQuery retrieves a query-string value as an integer identifier.

Returns:
  - int: the parsed value
  - bool: false when the value is missing or not an integer
*/
func IntQuery(request *http.Request, name string) (int, bool) {
	return parseInt(request.URL.Query().Get(name))
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
