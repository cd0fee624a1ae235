// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/jfcote87/ctxclient"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config provides a serializable Client definition.  Either a session
// id or login credentials must be present.
type Config struct {
	SenderID       string `json:"sender_id" yaml:"sender_id"`
	SenderPassword string `json:"sender_pwd" yaml:"sender_pwd"`
	// SessionID injects a session established out of band.
	SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	// Endpoint overrides the default gateway url; usually set together
	// with SessionID.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// Login credentials used by ClientFromConfig's Login call when no
	// SessionID is given.
	Login *Login `json:"login,omitempty" yaml:"login,omitempty"`
}

// A ConfigOption is passed to the ClientFrom... funcs.  Create one
// with ConfigHTTPClientFunc, ConfigControlIDFunc or ConfigLogger.
type ConfigOption interface {
	setValue(*Client)
}

type cfgOption func(*Client)

func (co cfgOption) setValue(c *Client) { co(c) }

// ConfigHTTPClientFunc sets the HTTPClientFunc for the Client created
// by the ClientFrom... funcs
func ConfigHTTPClientFunc(f ctxclient.Func) ConfigOption {
	return cfgOption(func(c *Client) {
		c.HTTPClientFunc = f
	})
}

// ConfigControlIDFunc sets the ControlIDFunc for the Client created
// by the ClientFrom... funcs
func ConfigControlIDFunc(f ControlIDFunc) ConfigOption {
	return cfgOption(func(c *Client) {
		c.ControlIDFunc = f
	})
}

// ConfigLogger sets the Logger for the Client created by the
// ClientFrom... funcs
func ConfigLogger(l zerolog.Logger) ConfigOption {
	return cfgOption(func(c *Client) {
		c.Logger = l
	})
}

// ClientFromConfig returns an authenticated Client.  A configured
// session id is injected directly; otherwise a Login call is made with
// the configured credentials.
func ClientFromConfig(ctx context.Context, cfg Config, opts ...ConfigOption) (*Client, error) {
	if cfg.SenderID == "" || cfg.SenderPassword == "" {
		return nil, errors.New("sender_id and sender_pwd must be specified")
	}
	c := NewClient(cfg.SenderID, cfg.SenderPassword)
	for _, o := range opts {
		o.setValue(c)
	}
	if cfg.Endpoint != "" {
		c.SetEndpoint(cfg.Endpoint)
	}
	if cfg.SessionID != "" {
		c.SetSessionID(cfg.SessionID)
		return c, nil
	}
	if cfg.Login == nil {
		return nil, errors.New("a session_id or login must be specified")
	}
	if _, err := c.Login(ctx, cfg.Login.UserID, cfg.Login.CompanyID, cfg.Login.Password); err != nil {
		return nil, err
	}
	return c, nil
}

// ClientFromConfigJSON returns a Client from a json representation.
func ClientFromConfigJSON(ctx context.Context, r io.Reader, opts ...ConfigOption) (*Client, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return ClientFromConfig(ctx, cfg, opts...)
}

// ClientFromConfigYAML returns a Client from a yaml representation.
func ClientFromConfigYAML(ctx context.Context, r io.Reader, opts ...ConfigOption) (*Client, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return ClientFromConfig(ctx, cfg, opts...)
}
