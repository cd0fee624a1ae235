// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

import (
	"encoding/xml"
)

// Request is the envelope posted to the gateway for a single call.
type Request struct {
	XMLName xml.Name  `xml:"request"`
	Control Control   `xml:"control"`
	Op      Operation `xml:"operation"`
}

// Control provides the sender header for a request.
type Control struct {
	SenderID          string `xml:"senderid,omitempty"`
	Password          string `xml:"password,omitempty"`
	ControlID         string `xml:"controlid,omitempty"`
	UniqueID          bool   `xml:"uniqueid"`
	DTDVersion        string `xml:"dtdversion"`
	Includewhitespace bool   `xml:"includewhitespace"`
	Status            string `xml:"status,omitempty"`
}

// Operation wraps the authentication element and the function payload.
// Auth must marshal into either a login or a sessionid element.
type Operation struct {
	Auth    interface{}       `xml:"authentication"`
	Content []RequestFunction `xml:"content>function"`
}

// RequestFunction wraps a function with its correlation id.
type RequestFunction struct {
	ControlID string `xml:"controlid,attr"`
	Payload   interface{}
}

// Login authenticates an operation with company user credentials.
// ClientID and LocationID are optional.
// https://developer.intacct.com/web-services/requests/#authentication-element
type Login struct {
	UserID     string `xml:"login>userid" json:"user_id" yaml:"user_id"`
	CompanyID  string `xml:"login>companyid" json:"company_id" yaml:"company_id"`
	Password   string `xml:"login>password" json:"password" yaml:"password"`
	ClientID   string `xml:"login>clientid,omitempty" json:"client_id,omitempty" yaml:"client_id,omitempty"`
	LocationID string `xml:"login>locationid,omitempty" json:"location_id,omitempty" yaml:"location_id,omitempty"`
}

// SessionID authenticates an operation with a previously obtained session
// token.
type SessionID string

// MarshalXML formats the sessionid element for a request.
func (s SessionID) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	sname := xml.Name{Local: "sessionid"}
	e.EncodeToken(start)
	e.EncodeToken(xml.StartElement{Name: sname})
	e.EncodeToken(xml.CharData([]byte(s)))
	e.EncodeToken(xml.EndElement{Name: sname})
	return e.EncodeToken(start.End())
}
