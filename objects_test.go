// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct_test

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"text/template"
	"time"
)

// Request mirror used to inspect envelopes posted by a Client.
type Request struct {
	XMLName xml.Name  `xml:"request"`
	Control Control   `xml:"control"`
	Op      Operation `xml:"operation"`
}

// Control provides a header to a request
type Control struct {
	SenderID          string `xml:"senderid,omitempty"`
	Password          string `xml:"password,omitempty"`
	ControlID         string `xml:"controlid,omitempty"`
	UniqueID          bool   `xml:"uniqueid"`
	DTDVersion        string `xml:"dtdversion"`
	Includewhitespace bool   `xml:"includewhitespace"`
	Status            string `xml:"status,omitempty"`
}

// Operation unmarshals the authentication element and function list
type Operation struct {
	Auth    Authentication    `xml:"authentication"`
	Content []RequestFunction `xml:"content>function"`
}

type Authentication struct {
	UserID     string `xml:"login>userid"`
	Company    string `xml:"login>companyid"`
	Password   string `xml:"login>password"`
	ClientID   string `xml:"login>clientid,omitempty"`
	LocationID string `xml:"login>locationid,omitempty"`
	SessionID  string `xml:"sessionid"`
}

// RequestFunction wraps function.
type RequestFunction struct {
	ControlID string `xml:"controlid,attr"`
	Payload   string `xml:",innerxml"`
}

func decodeRequest(r *http.Request) (*Request, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var rq *Request
	return rq, xml.Unmarshal(b, &rq)
}

var xmlHeader = http.Header{"Content-Type": {"application/xml"}}

const tSessionConfig = `{
	"sender_id": "Your SenderID",
	"sender_pwd": "Your Password",
	"session_id": "SESSIONID00",
	"endpoint": "https://test.url"
}`

const tLoginConfig = `{
	"sender_id": "Your SenderID",
	"sender_pwd": "Your Password",
	"login": {
		"user_id": "xml_gateway",
		"company_id": "Company Name",
		"password": "User Password",
		"location_id": "XYZ"
	}
}`

const tmplResponse = `<?xml version="1.0" encoding="UTF-8"?>
<response>
    <control>
        <status>success</status>
        <senderid>SENDERID</senderid>
        <controlid>1559244370</controlid>
        <uniqueid>false</uniqueid>
        <dtdversion>3.0</dtdversion>
    </control>
    <operation>
        <authentication>
            <status>success</status>
            <userid>xml_gateway</userid>
            <companyid>Your Company</companyid>
            <sessiontimestamp>{{.TmStamp}}</sessiontimestamp>
            <sessiontimeout>{{.TmOut}}</sessiontimeout>
        </authentication>
        {{.Result}}
    </operation>
</response>`

const tmplGetAPIResult = `<result>
<status>success</status>
<function>getAPISession</function>
<controlid>ac0d0d92-e449-4858-9a0c-720416fdec4b</controlid>
<data>
	<api>
		<sessionid>{{.SessionID}}</sessionid>
		<endpoint>{{.Endpoint}}</endpoint>
		<locationid>XYZ</locationid>
	</api>
</data>
</result>`

var respTmpl = template.Must(template.New("resp").Parse(tmplResponse))
var apiSessionTmpl = template.Must(template.New("apiSession").Parse(tmplGetAPIResult))

// wrapResult nests a result fragment in a successful envelope.
func wrapResult(result string) []byte {
	tm := time.Now()
	buff := &bytes.Buffer{}
	respTmpl.Execute(buff, map[string]string{
		"TmStamp": tm.Format(time.RFC3339),
		"TmOut":   tm.Add(time.Hour).Format(time.RFC3339),
		"Result":  result,
	})
	return buff.Bytes()
}

func sessionResponse(sessionID, endpoint string) []byte {
	buff := &bytes.Buffer{}
	apiSessionTmpl.Execute(buff, map[string]string{
		"SessionID": sessionID,
		"Endpoint":  endpoint,
	})
	return wrapResult(buff.String())
}

const controlFailureResp = `<?xml version="1.0" encoding="UTF-8"?>
<response>
    <control>
        <status>failure</status>
    </control>
    <errormessage>
        <error>
            <errorno>XL03000003</errorno>
            <description></description>
            <description2>Invalid Request DTD Version: 2.0</description2>
            <correction></correction>
        </error>
    </errormessage>
</response>`

const authFailureResp = `<?xml version="1.0" encoding="UTF-8"?>
<response>
    <control>
        <status>success</status>
        <senderid>SENDERID</senderid>
        <controlid>1559244370</controlid>
        <uniqueid>false</uniqueid>
        <dtdversion>3.0</dtdversion>
    </control>
    <operation>
        <authentication>
            <status>failure</status>
        </authentication>
        <errormessage>
            <error>
                <errorno>XL03000006</errorno>
                <description></description>
                <description2>Sign-in information is incorrect</description2>
                <correction></correction>
            </error>
        </errormessage>
    </operation>
</response>`

const tmplResultFailure = `<result>
<status>failure</status>
<function>readByQuery</function>
<controlid>testFunctionId</controlid>
<errormessage>
	<error>
		<errorno>BL34000061</errorno>
		<description></description>
		<description2>%s</description2>
		<correction></correction>
	</error>
</errormessage>
</result>`

func resultFailureResponse(description2 string) []byte {
	return wrapResult(fmt.Sprintf(tmplResultFailure, description2))
}

const tmplQueryResult = `<result>
<status>success</status>
<function>query</function>
<controlid>testFunctionId</controlid>
<data listtype="CUSTOMER" count="%d" totalcount="%d" numremaining="0" resultId="">
%s
</data>
</result>`

func queryResponse(count, totalcount int, rows string) []byte {
	return wrapResult(fmt.Sprintf(tmplQueryResult, count, totalcount, rows))
}

const tmplReadResult = `<result>
<status>success</status>
<function>readByQuery</function>
<controlid>testFunctionId</controlid>
<data listtype="customer" count="%d">
%s
</data>
</result>`

func readResponse(count int, rows string) []byte {
	return wrapResult(fmt.Sprintf(tmplReadResult, count, rows))
}

func customerRow(recordno int, id, name string) string {
	return fmt.Sprintf(`<CUSTOMER><RECORDNO>%d</RECORDNO><CUSTOMERID>%s</CUSTOMERID><NAME>%s</NAME></CUSTOMER>`,
		recordno, id, name)
}
