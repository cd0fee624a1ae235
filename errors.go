// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/jfcote87/ctxclient"
)

// permissionMarker appears in description2 of business rule failures
// caused by missing API permissions.
const permissionMarker = "You do not have permission for API"

// GatewayError carries the message and the raw decoded payload of a
// failed gateway call.  It is embedded in every error variant so callers
// may inspect Support IDs and other gateway fields regardless of kind.
type GatewayError struct {
	Message string
	// Payload holds the decoded response, or the errormessage node for
	// envelope level failures.  May be nil when the body was not xml.
	Payload ResultMap
}

func (e *GatewayError) Error() string { return e.Message }

// Errors returns the payload's error entries normalized to a slice.
// The slice is empty when the payload carries no errormessage.
func (e *GatewayError) Errors() []ResultMap {
	if e.Payload == nil {
		return nil
	}
	errs, err := e.Payload.ReadArray("error")
	if err != nil {
		return nil
	}
	return errs
}

// SDKError is the catch-all variant for unexpected envelope shapes and
// unmapped transport status codes.
type SDKError struct{ GatewayError }

// WrongParamsError reports a transport status 400, an envelope level
// control failure, or a business rule failure without the permission
// marker.  Fix the request before retrying.
type WrongParamsError struct{ GatewayError }

// InvalidTokenError reports failed authentication or a business rule
// failure whose description carries the insufficient permission marker.
// Re-login before retrying.
type InvalidTokenError struct{ GatewayError }

// ExpiredTokenError reports transport status 498.
type ExpiredTokenError struct{ GatewayError }

// NoPrivilegeError reports transport status 403.
type NoPrivilegeError struct{ GatewayError }

// NotFoundItemError reports transport status 404.
type NotFoundItemError struct{ GatewayError }

// InternalServerError reports transport status 500.
type InternalServerError struct{ GatewayError }

// statusError maps a non-2xx transport response to its error variant.
func statusError(ns *ctxclient.NotSuccess) error {
	// error pages are not always xml
	payload, err := DecodeMap(ns.Body, "error")
	if err != nil {
		payload = ResultMap{"": string(ns.Body)}
	}
	if em := payload.Map("errormessage"); em != nil {
		payload = decodeErrors(em)
	}
	ge := GatewayError{Payload: payload}
	switch ns.StatusCode {
	case http.StatusBadRequest:
		ge.Message = "some of the parameters are wrong"
		return &WrongParamsError{ge}
	case http.StatusUnauthorized:
		ge.Message = "invalid token / incorrect credentials"
		return &InvalidTokenError{ge}
	case http.StatusForbidden:
		ge.Message = "forbidden, the user has insufficient privilege"
		return &NoPrivilegeError{ge}
	case http.StatusNotFound:
		ge.Message = "not found item with ID"
		return &NotFoundItemError{ge}
	case 498:
		ge.Message = "expired token, try to refresh it"
		return &ExpiredTokenError{ge}
	case http.StatusInternalServerError:
		ge.Message = "internal server error"
		return &InternalServerError{ge}
	}
	ge.Message = fmt.Sprintf("unexpected response status %d", ns.StatusCode)
	return &SDKError{ge}
}

var supportIDRx = regexp.MustCompile(`Support ID: (.*)\]`)

// decodeErrors normalizes an errormessage node's error entries to a
// sequence and percent-decodes the Support ID fragment inside the first
// entry's description2, splicing the decoded value back into the message.
// The returned node always holds error as []ResultMap.
func decodeErrors(errmsg ResultMap) ResultMap {
	if errmsg == nil {
		return nil
	}
	errs, err := errmsg.ReadArray("error")
	if err != nil || len(errs) == 0 {
		return errmsg
	}
	if desc := errs[0].String("description2"); desc != "" {
		if m := supportIDRx.FindStringSubmatch(desc); m != nil {
			if decoded, err := url.PathUnescape(m[1]); err == nil {
				errs[0]["description2"] = strings.Replace(desc, m[1], decoded, 1)
			}
		}
	}
	errmsg["error"] = errs
	return errmsg
}

// hasPermissionFailure reports whether any error entry's description2
// contains the insufficient permission marker.
func hasPermissionFailure(errmsg ResultMap) bool {
	if errmsg == nil {
		return false
	}
	errs, err := errmsg.ReadArray("error")
	if err != nil {
		return false
	}
	for _, e := range errs {
		if strings.Contains(e.String("description2"), permissionMarker) {
			return true
		}
	}
	return false
}
