// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

import (
	"encoding/xml"
	"errors"
	"strings"
)

// Function defines a single gateway action.  See
// https://developer.intacct.com/web-services/functions/
type Function interface {
	GetControlID() string
}

// Reader is a read, readByName, readByQuery, readMore or readRelated
// function.  Use the Read, ReadByName, ReadByQuery, ReadMore and
// ReadRelated funcs rather than creating one directly.
type Reader struct {
	XMLName      xml.Name
	Object       string  `xml:"object,omitempty"`          // object name
	Keys         *string `xml:"keys,omitempty"`            // comma sep list of keys for read and readByName
	Query        *string `xml:"query,omitempty"`           // query statement for readByQuery
	FieldList    string  `xml:"fields,omitempty"`          // field list
	MaxRecs      int     `xml:"pagesize,omitempty"`        // max items returned
	ReturnFormat string  `xml:"returnFormat,omitempty"`    // xml for now
	ResultID     string  `xml:"resultId,omitempty"`        // continuation id for readMore
	Relationship string  `xml:"relationship_id,omitempty"` // relationship name for readRelated

	controlID string
}

var (
	readXMLName        = xml.Name{Local: "read"}
	readByQueryXMLName = xml.Name{Local: "readByQuery"}
	readByNameXMLName  = xml.Name{Local: "readByName"}
	readMoreXMLName    = xml.Name{Local: "readMore"}
	readRelatedXMLName = xml.Name{Local: "readRelated"}
	readReturnFormat   = "xml"
	readAllFields      = "*"
)

// Read returns a Reader to read specific keys.  If no keys
// are passed, the first 100 records are returned in an
// unspecified order.
func Read(objectName string, keys ...string) *Reader {
	var keyvals = strings.Join(keys, ",")
	return &Reader{
		XMLName:      readXMLName,
		Object:       objectName,
		Keys:         &keyvals,
		FieldList:    readAllFields,
		ReturnFormat: readReturnFormat,
	}
}

// ReadByName returns a Reader to read specific name keys.
func ReadByName(objectName string, keys ...string) *Reader {
	var keyvals = strings.Join(keys, ",")
	return &Reader{
		XMLName:      readByNameXMLName,
		Object:       objectName,
		Keys:         &keyvals,
		FieldList:    readAllFields,
		ReturnFormat: readReturnFormat,
	}
}

// ReadByQuery returns a Reader based upon the passed query string which is an
// SQL-like query based on fields on the object. Illegal XML characters must be
// properly encoded. The following SQL operators are supported: <, >, >=, <=, =,
// like, not like, in, not in. When doing NULL comparisons: IS NOT NULL, IS NULL.
// Multiple fields may be matched using the AND and OR operators. Joins are not
// supported. Single quotes in any operands must be escaped with a backslash -
// For example, the value Erik's Deli would become 'Erik\'s Deli'
func ReadByQuery(objectName string, qry string) *Reader {
	return &Reader{
		XMLName:      readByQueryXMLName,
		Object:       objectName,
		Query:        &qry,
		FieldList:    readAllFields,
		ReturnFormat: readReturnFormat,
	}
}

// ReadMore retrieves the remaining records of a readByQuery whose
// result set exceeded its page size.  The resultID comes from the
// previous result's data node.
func ReadMore(resultID string) *Reader {
	return &Reader{
		XMLName:  readMoreXMLName,
		ResultID: resultID,
	}
}

// ReadRelated retrieves records related to one or more records by a
// named relationship.  Only custom objects support this.
// https://developer.intacct.com/api/platform-services/records/#get-related-records
func ReadRelated(objectName string, relationshipName string, keys ...string) *Reader {
	var keyvals = strings.Join(keys, ",")
	return &Reader{
		XMLName:      readRelatedXMLName,
		Object:       objectName,
		Keys:         &keyvals,
		Relationship: relationshipName,
		FieldList:    readAllFields,
		ReturnFormat: readReturnFormat,
	}
}

// Fields sets the fields to return.  If not set all fields are
// returned.  Not applicable to ReadMore.
func (r *Reader) Fields(fields ...string) *Reader {
	if r != nil && len(fields) > 0 && r.XMLName.Local != readMoreXMLName.Local {
		r.FieldList = strings.Join(fields, ",")
	}
	return r
}

// PageSize sets the max number of records returned
//
// if pageSize is not set, 100 is assumed
func (r *Reader) PageSize(numOfRecs int) *Reader {
	if r.XMLName.Local == readByQueryXMLName.Local {
		r.MaxRecs = numOfRecs
	}
	return r
}

// SetControlID sets a unique identifier for the call
func (r *Reader) SetControlID(controlID string) *Reader {
	r.controlID = controlID
	return r
}

// GetControlID returns the unique identifier for the call
func (r Reader) GetControlID() string {
	return r.controlID
}

// Writer is used to create functions such as create, update and delete.
// For these, use the Create, Update and Delete funcs.  See the
// GetAPISession definition for an example of how to use Writer to
// implement other verbs.
type Writer struct {
	// Cmd names the top level element.
	Cmd string `xml:"-"`
	// Payload may be nil for bare verbs such as getAPISession.
	Payload interface{}
	// If not empty, ObjectName wraps Payload in an element of that name.
	ObjectName string `xml:"-"`
	controlID  string
}

// MarshalXML customizes xml output for Writer
func (w Writer) MarshalXML(e *xml.Encoder, s xml.StartElement) error {
	s.Name.Local = w.Cmd
	s.Name.Space = ""
	s.Attr = nil
	if err := e.EncodeToken(s); err != nil {
		return err
	}
	if w.Payload != nil {
		if err := w.encodePayload(e); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: s.Name})
}

// only call if w.Payload != nil
func (w *Writer) encodePayload(e *xml.Encoder) error {
	if w.ObjectName == "" {
		return e.Encode(w.Payload)
	}
	return e.EncodeElement(w.Payload, xml.StartElement{Name: xml.Name{Local: w.ObjectName}})
}

// Create returns a Writer function to create object(s) in payload
func Create(objectName string, payload interface{}) *Writer {
	return &Writer{
		Cmd:        "create",
		ObjectName: objectName,
		Payload:    payload,
	}
}

// Update returns a Writer function to update object(s) in payload. Payload
// must contain the record key.
func Update(objectName string, payload interface{}) *Writer {
	return &Writer{
		Cmd:        "update",
		ObjectName: objectName,
		Payload:    payload,
	}
}

// Delete returns a Writer function to delete object(s) in payload. Payload
// must contain the record key.
func Delete(objectName string, payload interface{}) *Writer {
	return &Writer{
		Cmd:        "delete",
		ObjectName: objectName,
		Payload:    payload,
	}
}

// SetControlID sets a unique identifier for the call
func (w *Writer) SetControlID(controlID string) *Writer {
	w.controlID = controlID
	return w
}

// GetControlID returns the unique identifier for the call
func (w Writer) GetControlID() string {
	return w.controlID
}

// GetAPISession returns the function for obtaining a session id for
// the passed location (blank location is the top-level company).
// https://developer.intacct.com/api/company-console/api-sessions/#get-api-session
func GetAPISession(location string) Function {
	if location == "" {
		return &Writer{Cmd: "getAPISession"}
	}
	var loc = struct {
		XMLName xml.Name `xml:"locationid"`
		Loc     string   `xml:",innerxml"`
	}{
		Loc: location,
	}
	return &Writer{Cmd: "getAPISession", Payload: loc}
}

// LegacyFunction posts a payload under a v2.1 style verb element such
// as create_invoice or record_cctransaction.  The payload's fields
// become direct children of the verb element.
type LegacyFunction struct {
	Verb      string
	Payload   interface{}
	controlID string
}

// MarshalXML encodes the payload under the verb element.
func (lf LegacyFunction) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if lf.Verb == "" {
		return errors.New("no legacy verb specified")
	}
	if lf.Payload == nil {
		return e.EncodeElement("", xml.StartElement{Name: xml.Name{Local: lf.Verb}})
	}
	return e.EncodeElement(lf.Payload, xml.StartElement{Name: xml.Name{Local: lf.Verb}})
}

// SetControlID sets a unique identifier for the call
func (lf *LegacyFunction) SetControlID(controlID string) *LegacyFunction {
	lf.controlID = controlID
	return lf
}

// GetControlID is needed to fulfill the Function interface
func (lf LegacyFunction) GetControlID() string {
	return lf.controlID
}

// Inspector performs an inspection macro returning the definition
// of the named object.  For a list of all objects, set Object to "*".
type Inspector struct {
	XMLName   xml.Name `xml:"inspect"`
	IsDetail  int      `xml:"detail,attr,omitempty"` // set to 1 for detail
	Object    string   `xml:"object"`
	controlID string
}

// ObjectFields returns a function listing an object's fields.
func ObjectFields(objectName string, showDetail bool) *Inspector {
	var detVal = 0
	if showDetail {
		detVal = 1
	}
	return &Inspector{
		IsDetail: detVal,
		Object:   objectName,
	}
}

// ObjectList returns an Inspector function listing all objects.
func ObjectList() *Inspector {
	return &Inspector{Object: "*"}
}

// GetControlID returns ControlID for function.
func (i *Inspector) GetControlID() string {
	return i.controlID
}

// SetControlID sets the ControlID for function.
func (i *Inspector) SetControlID(id string) {
	i.controlID = id
}
