// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intacct provides typed resource accessors over the Sage
// Intacct legacy xml gateway.  A Client owns the sender credentials and
// session state; per object APIs translate field/value filters, paged
// listing and create/update payloads into the gateway's session based
// xml envelope.
package intacct // import "github.com/fylein/intacct-go"

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jfcote87/ctxclient"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is used until a login response returns a session
// specific endpoint.
const DefaultEndpoint = "https://api.intacct.com/ia/xml/xmlgw.phtml"

// DefaultDTDVersion used for requests.
const DefaultDTDVersion = "3.0"

// ControlIDFunc generates unique control ids for request headers
type ControlIDFunc func(ctx context.Context) string

// ID executes a ControlIDFunc while providing
// an ID generator based upon time for nil instances
func (idFunc ControlIDFunc) ID(ctx context.Context) string {
	if idFunc == nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return idFunc(ctx)
}

func isEmpty(val, defaultVal string) string {
	if val == "" {
		return defaultVal
	}
	return val
}

// Client owns the sender credentials and the mutable session state
// (session id and endpoint) shared by resource APIs.  Create one Client
// per logical session.  Login and the setters mutate session state, so
// they must not race with in-flight calls; operations after a stable
// login are safe to issue from multiple goroutines.
type Client struct {
	// SenderID and SenderPassword are the web services sender
	// credentials, not the company login.
	// https://developer.intacct.com/web-services/#authentication
	SenderID       string
	SenderPassword string
	// ControlIDFunc may be set to create control ids for the request
	// header.  If nil the control id is the current time in nanoseconds.
	ControlIDFunc
	// HTTPClientFunc may be set if a unique http client is needed.
	HTTPClientFunc ctxclient.Func
	// Logger receives debug events for each request.  The zero Logger
	// discards everything.
	Logger zerolog.Logger

	mu        sync.Mutex
	sessionID string
	endpoint  string
}

// NewClient returns a Client for the given sender credentials pointed
// at the default gateway endpoint.
func NewClient(senderID, senderPassword string) *Client {
	return &Client{
		SenderID:       senderID,
		SenderPassword: senderPassword,
		Logger:         zerolog.Nop(),
	}
}

// SetSenderCredentials replaces the web services sender identity.
func (c *Client) SetSenderCredentials(senderID, senderPassword string) {
	c.SenderID = senderID
	c.SenderPassword = senderPassword
}

// SetSessionID injects a session obtained out of band, bypassing Login.
// The endpoint remains unchanged.
func (c *Client) SetSessionID(sessionID string) {
	c.mu.Lock()
	c.sessionID = sessionID
	c.mu.Unlock()
}

// SessionID returns the current session token, empty before login.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// SetEndpoint overrides the gateway url.  Rarely needed outside tests;
// Login captures the session endpoint automatically.
func (c *Client) SetEndpoint(endpoint string) {
	c.mu.Lock()
	c.endpoint = endpoint
	c.mu.Unlock()
}

// Endpoint returns the current gateway url.
func (c *Client) Endpoint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.endpoint == "" {
		return DefaultEndpoint
	}
	return c.endpoint
}

// Login obtains a new session with company user credentials.  On
// success the session id and the session specific endpoint from
// result.data.api replace the Client's current values and the session
// id is returned.
func (c *Client) Login(ctx context.Context, userID, companyID, userPassword string) (string, error) {
	op, err := c.send(ctx, &Login{
		UserID:    userID,
		CompanyID: companyID,
		Password:  userPassword,
	}, &Writer{Cmd: "getAPISession"})
	if err != nil {
		return "", err
	}
	if op.Map("authentication").String("status") != "success" {
		return "", &SDKError{GatewayError{
			Message: fmt.Sprintf("login failed: %v", op["errormessage"]),
			Payload: op,
		}}
	}
	api := op.Map("result").Map("data").Map("api")
	sessionID := api.String("sessionid")
	if sessionID == "" {
		return "", &SDKError{GatewayError{
			Message: "login response missing session id",
			Payload: op,
		}}
	}
	c.mu.Lock()
	c.sessionID = sessionID
	if ep := api.String("endpoint"); ep != "" {
		c.endpoint = ep
	}
	c.mu.Unlock()
	c.Logger.Debug().Str("endpoint", c.Endpoint()).Msg("session established")
	return sessionID, nil
}

func (c *Client) validate(ctx context.Context, fn Function) error {
	if c == nil {
		return errors.New("nil Client")
	}
	if c.SenderID == "" || c.SenderPassword == "" {
		return errors.New("sender id/password is empty")
	}
	if ctx == nil {
		return errors.New("nil context")
	}
	if fn == nil {
		return errors.New("no function specified")
	}
	return nil
}

// send is the choke point every operation passes through: it wraps fn
// in a request envelope with a fresh correlation id and the given
// authentication element, posts it, decodes the body forcing the named
// elements to sequences, classifies failures and returns the operation
// node on success.
func (c *Client) send(ctx context.Context, auth interface{}, fn Function, forceList ...string) (ResultMap, error) {
	if err := c.validate(ctx, fn); err != nil {
		return nil, err
	}
	req, err := c.makeRequest(ctx, auth, fn)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug().Str("url", req.URL.String()).Msg("posting request")

	res, err := c.HTTPClientFunc.Do(ctx, req)
	if err != nil {
		var ns *ctxclient.NotSuccess
		if errors.As(err, &ns) {
			c.Logger.Debug().Int("status", ns.StatusCode).Msg("gateway returned non-2xx status")
			return nil, statusError(ns)
		}
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return classify(body, append(forceList, "error"))
}

// classify implements the response interpretation algorithm: decode the
// envelope, then check the control status, the authentication status
// and the result status in order.
func classify(body []byte, forceList []string) (ResultMap, error) {
	rm, err := DecodeMap(body, forceList...)
	if err != nil {
		return nil, &SDKError{GatewayError{
			Message: fmt.Sprintf("unparsable response body: %v", err),
			Payload: ResultMap{"": string(body)},
		}}
	}
	if rm.Map("control").String("status") == "failure" {
		return nil, &WrongParamsError{GatewayError{
			Message: "some of the parameters are wrong",
			Payload: decodeErrors(rm.Map("errormessage")),
		}}
	}
	op := rm.Map("operation")
	if op == nil {
		return nil, &SDKError{GatewayError{
			Message: "unexpected response envelope",
			Payload: rm,
		}}
	}
	if op.Map("authentication").String("status") == "failure" {
		return nil, &InvalidTokenError{GatewayError{
			Message: "invalid token / incorrect credentials",
			Payload: decodeErrors(op.Map("errormessage")),
		}}
	}
	result := op.Map("result")
	if result.String("status") == "failure" {
		errmsg := decodeErrors(result.Map("errormessage"))
		if hasPermissionFailure(errmsg) {
			return nil, &InvalidTokenError{GatewayError{
				Message: "the user has insufficient privilege",
				Payload: errmsg,
			}}
		}
		return nil, &WrongParamsError{GatewayError{
			Message: fmt.Sprintf("error during %s", result.String("function")),
			Payload: errmsg,
		}}
	}
	return op, nil
}

// makeRequest builds the *http.Request assigning headers and the
// envelope body for posting to the gateway.
func (c *Client) makeRequest(ctx context.Context, auth interface{}, fn Function) (*http.Request, error) {
	if auth == nil {
		return nil, errors.New("no authentication specified")
	}
	reqBuffer := bytes.NewBufferString(xml.Header)
	if err := xml.NewEncoder(reqBuffer).Encode(&Request{
		Control: Control{
			SenderID:   c.SenderID,
			Password:   c.SenderPassword,
			ControlID:  c.ControlIDFunc.ID(ctx),
			DTDVersion: DefaultDTDVersion,
		},
		Op: Operation{
			Auth: auth,
			Content: []RequestFunction{{
				ControlID: isEmpty(fn.GetControlID(), uuid.NewString()),
				Payload:   fn,
			}},
		},
	}); err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequest("POST", c.Endpoint(), reqBuffer)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/xml")
	return req, nil
}
