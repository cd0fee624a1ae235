// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// DefaultPageSize bounds each page of a GetAll listing.
const DefaultPageSize = 2000

// getPageSize bounds the single page returned by Get.
const getPageSize = 1000

// API executes requests for a single gateway object type (dimension).
// Obtain one from a Client resource constructor or from Client.NewAPI.
// All operations require an authenticated Client.
type API struct {
	client     *Client
	dimension  string
	pageSize   int
	legacyVerb string
}

// An APIOption configures an API during construction.
type APIOption func(*API)

// WithPageSize overrides the default page size used by GetAll.
func WithPageSize(n int) APIOption {
	return func(a *API) {
		if n > 0 {
			a.pageSize = n
		}
	}
}

// WithLegacyPost marks the resource as a legacy endpoint: Post wraps
// the payload under verb instead of the generic create function.
func WithLegacyPost(verb string) APIOption {
	return func(a *API) {
		a.legacyVerb = verb
	}
}

// NewAPI returns an accessor for an arbitrary dimension.
func (c *Client) NewAPI(dimension string, opts ...APIOption) *API {
	a := &API{
		client:    c,
		dimension: dimension,
		pageSize:  DefaultPageSize,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Dimension returns the object name this accessor targets.
func (a *API) Dimension() string { return a.dimension }

// Exec sends fn with the Client's current session and returns the
// result node.  Rows named after the dimension always decode as
// sequences, so single row and multi row responses look alike.
func (a *API) Exec(ctx context.Context, fn Function) (ResultMap, error) {
	sid := a.client.SessionID()
	if sid == "" {
		return nil, errors.New("no session: call Login or SetSessionID first")
	}
	op, err := a.client.send(ctx, SessionID(sid), fn, a.dimension)
	if err != nil {
		return nil, err
	}
	return op.Map("result"), nil
}

// Count returns the total number of records for the dimension.
func (a *API) Count(ctx context.Context) (int, error) {
	result, err := a.Exec(ctx, Query{
		Object: a.dimension,
		Select: Select{Fields: []string{"RECORDNO"}},
		PageSz: 1,
	})
	if err != nil {
		return 0, err
	}
	total, err := strconv.Atoi(result.Map("data").String("@totalcount"))
	if err != nil {
		return 0, fmt.Errorf("parse totalcount: %w", err)
	}
	return total, nil
}

// Get returns one page of records matching field = 'value', up to 1000
// rows.  The filter is interpolated verbatim into the query string:
// callers must pre-sanitize untrusted values (single quotes in
// particular).  If no fields are given all fields are returned.  The
// raw data node is returned, with record rows under the dimension name.
func (a *API) Get(ctx context.Context, field, value string, fields ...string) (ResultMap, error) {
	rdr := ReadByQuery(a.dimension, fmt.Sprintf("%s = '%s'", field, value)).
		PageSize(getPageSize).
		Fields(fields...)
	result, err := a.Exec(ctx, rdr)
	if err != nil {
		return nil, err
	}
	return result.Map("data"), nil
}

// GetAll returns every record for the dimension, issuing sequential
// query pages until the total from Count is covered.  When both field
// and value are non-empty an equalto filter is applied to every page.
// When no fields are given the dimension's default field list is used.
// Pagination is not transactional: if the remote set mutates between
// pages the concatenation is best effort.  A failed page aborts the
// whole call.
func (a *API) GetAll(ctx context.Context, field, value string, fields ...string) ([]ResultMap, error) {
	total, err := a.Count(ctx)
	if err != nil {
		return nil, err
	}
	sel := fields
	if len(sel) == 0 {
		sel = DefaultFields(a.dimension)
	}
	var complete []ResultMap
	for offset := 0; offset < total; offset += a.pageSize {
		q := Query{
			Object: a.dimension,
			Select: Select{Fields: sel},
			PageSz: a.pageSize,
			Offset: offset,
		}
		if field != "" && value != "" {
			q.Filter = NewFilter().EqualTo(field, value)
		}
		result, err := a.Exec(ctx, q)
		if err != nil {
			return nil, err
		}
		rows, err := result.Map("data").ReadArray(a.dimension)
		if err != nil {
			return nil, fmt.Errorf("page at offset %d: %w", offset, err)
		}
		complete = append(complete, rows...)
	}
	return complete, nil
}

// Post creates or updates a record.  Legacy resources wrap data under
// their configured verb; all others use the generic create function
// with data nested under the dimension element.  The created record
// result node is returned.
func (a *API) Post(ctx context.Context, data interface{}) (ResultMap, error) {
	if a.legacyVerb != "" {
		return a.Exec(ctx, &LegacyFunction{Verb: a.legacyVerb, Payload: data})
	}
	return a.Exec(ctx, Create(a.dimension, data))
}
