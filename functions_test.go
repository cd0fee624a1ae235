// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct_test

import (
	"encoding/xml"
	"strings"
	"testing"

	intacct "github.com/fylein/intacct-go"
)

func cmpCustomFields(a, b []intacct.CustomField) bool {
	if len(a) != len(b) {
		return false
	}
	for i, f := range a {
		if b[i] != f {
			return false
		}
	}
	return true
}

func TestReader(t *testing.T) {
	var rdrTests = []struct {
		Rdr  *intacct.Reader
		Name string
		Flds []intacct.CustomField
	}{
		{
			Rdr:  intacct.Read("CUSTOMER", "1", "2").Fields("A", "B", "C"),
			Name: "read",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "CUSTOMER"},
				{Name: "keys", Value: "1,2"},
				{Name: "fields", Value: "A,B,C"},
				{Name: "returnFormat", Value: "xml"},
			},
		},
		{
			Rdr:  intacct.Read("CUSTOMER", ""),
			Name: "read",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "CUSTOMER"},
				{Name: "keys", Value: ""},
				{Name: "fields", Value: "*"},
				{Name: "returnFormat", Value: "xml"},
			},
		},
		{
			Rdr:  intacct.ReadByName("CUSTOMER", "A").PageSize(100),
			Name: "readByName",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "CUSTOMER"},
				{Name: "keys", Value: "A"},
				{Name: "fields", Value: "*"},
				{Name: "returnFormat", Value: "xml"},
			},
		},
		{
			Rdr:  intacct.ReadByQuery("CUSTOMER", "").Fields("fld1", "fld2"),
			Name: "readByQuery",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "CUSTOMER"},
				{Name: "query", Value: ""},
				{Name: "fields", Value: "fld1,fld2"},
				{Name: "returnFormat", Value: "xml"},
			},
		},
		{
			Rdr:  intacct.ReadByQuery("CUSTOMER", "A > B").PageSize(100),
			Name: "readByQuery",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "CUSTOMER"},
				{Name: "query", Value: "A > B"},
				{Name: "fields", Value: "*"},
				{Name: "returnFormat", Value: "xml"},
				{Name: "pagesize", Value: "100"},
			},
		},
		{
			Rdr:  intacct.ReadMore("resultid123").Fields("ignored"),
			Name: "readMore",
			Flds: []intacct.CustomField{
				{Name: "resultId", Value: "resultid123"},
			},
		},
		{
			Rdr:  intacct.ReadRelated("asset", "Rasset_class"),
			Name: "readRelated",
			Flds: []intacct.CustomField{
				{Name: "object", Value: "asset"},
				{Name: "keys", Value: ""},
				{Name: "fields", Value: "*"},
				{Name: "returnFormat", Value: "xml"},
				{Name: "relationship_id", Value: "Rasset_class"},
			},
		},
	}
	for idx, tt := range rdrTests {
		var keyRdr = struct {
			CustomFlds []intacct.CustomField `xml:",any"`
		}{}
		b, _ := xml.Marshal(tt.Rdr)
		if !strings.HasPrefix(string(b), "<"+tt.Name) {
			t.Errorf("test #%d expected element name <%s>; got %s", idx, tt.Name, strings.Split(string(b), ">")[0]+">")
			continue
		}
		if err := xml.Unmarshal(b, &keyRdr); err != nil {
			t.Errorf("unable to unmarshal test %d", idx)
			return
		}
		if !cmpCustomFields(tt.Flds, keyRdr.CustomFlds) {
			t.Errorf("test %d expected %#v; got %#v", idx, tt.Flds, keyRdr.CustomFlds)
		}
	}
}

func TestWriter(t *testing.T) {
	payload := intacct.Customer{CustomerID: "C1", Name: "Customer One"}
	var tests = []struct {
		fn   intacct.Function
		want string
	}{
		{
			fn:   intacct.Create("CUSTOMER", payload),
			want: "<create><CUSTOMER><CUSTOMERID>C1</CUSTOMERID><NAME>Customer One</NAME></CUSTOMER></create>",
		},
		{
			fn:   intacct.Update("CUSTOMER", payload),
			want: "<update><CUSTOMER><CUSTOMERID>C1</CUSTOMERID><NAME>Customer One</NAME></CUSTOMER></update>",
		},
		{
			fn:   intacct.Delete("CUSTOMER", payload),
			want: "<delete><CUSTOMER><CUSTOMERID>C1</CUSTOMERID><NAME>Customer One</NAME></CUSTOMER></delete>",
		},
		{
			fn:   intacct.GetAPISession(""),
			want: "<getAPISession></getAPISession>",
		},
		{
			fn:   intacct.GetAPISession("XYZ"),
			want: "<getAPISession><locationid>XYZ</locationid></getAPISession>",
		},
	}
	for idx, tt := range tests {
		b, err := xml.Marshal(tt.fn)
		if err != nil {
			t.Errorf("test #%d marshal: %v", idx, err)
			continue
		}
		if string(b) != tt.want {
			t.Errorf("test #%d expected %s; got %s", idx, tt.want, b)
		}
	}
}

func TestLegacyFunction(t *testing.T) {
	var payload = struct {
		CustomerID  string `xml:"customerid"`
		DateCreated string `xml:"datecreated,omitempty"`
	}{CustomerID: "C1", DateCreated: "2024-05-01"}

	b, err := xml.Marshal(&intacct.LegacyFunction{
		Verb:    "create_expensereport",
		Payload: payload,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "<create_expensereport><customerid>C1</customerid><datecreated>2024-05-01</datecreated></create_expensereport>"
	if string(b) != want {
		t.Errorf("expected %s; got %s", want, b)
	}

	b, err = xml.Marshal(&intacct.LegacyFunction{Verb: "create_reversepayment"})
	if err != nil {
		t.Fatalf("marshal nil payload: %v", err)
	}
	if string(b) != "<create_reversepayment></create_reversepayment>" {
		t.Errorf("expected bare verb element; got %s", b)
	}

	if _, err = xml.Marshal(&intacct.LegacyFunction{Payload: payload}); err == nil {
		t.Errorf("expected error for missing verb")
	}
}

func TestInspector(t *testing.T) {
	b, err := xml.Marshal(intacct.ObjectList())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "<inspect><object>*</object></inspect>" {
		t.Errorf("expected object list inspect; got %s", b)
	}

	b, err = xml.Marshal(intacct.ObjectFields("CUSTOMER", true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `<inspect detail="1"><object>CUSTOMER</object></inspect>` {
		t.Errorf("expected detail inspect; got %s", b)
	}
}
