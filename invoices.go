// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

// ARInvoices returns the accessor for AR invoice records.
func (c *Client) ARInvoices() *API {
	return c.NewAPI("ARINVOICE")
}

// ARAdjustments returns the accessor for AR adjustment records.  The
// gateway accepts adjustment payloads under the create_aradjustment
// object name.
func (c *Client) ARAdjustments() *API {
	return c.NewAPI("create_aradjustment")
}

// UpdateInvoices returns the accessor used to update posted invoices
// through the update_invoice object.
func (c *Client) UpdateInvoices() *API {
	return c.NewAPI("update_invoice")
}

// Invoice is a typed create/update payload for AR invoices.
type Invoice struct {
	RecordNo     Int           `xml:"RECORDNO,omitempty"`
	CustomerID   string        `xml:"CUSTOMERID,omitempty"`
	WhenCreated  Date          `xml:"WHENCREATED,omitempty"`
	WhenPosted   Date          `xml:"WHENPOSTED,omitempty"`
	WhenDue      Date          `xml:"WHENDUE,omitempty"`
	TermName     string        `xml:"TERMNAME,omitempty"`
	Action       string        `xml:"ACTION,omitempty"` // Draft or Submit
	InvoiceNo    string        `xml:"INVOICENO,omitempty"`
	PONumber     string        `xml:"PONUMBER,omitempty"`
	Description  string        `xml:"DESCRIPTION,omitempty"`
	Currency     string        `xml:"CURRENCY,omitempty"`
	ExchRateType string        `xml:"EXCH_RATE_TYPE_ID,omitempty"`
	Lines        []InvoiceLine `xml:"ARINVOICEITEMS>ARINVOICEITEM,omitempty"`
	CustomFields []CustomField `xml:",any"`
}

// InvoiceLine is one line item of an Invoice payload.
type InvoiceLine struct {
	AccountLabel string        `xml:"ACCOUNTLABEL,omitempty"`
	GLAccountNo  string        `xml:"GLACCOUNTNO,omitempty"`
	Amount       Float64       `xml:"AMOUNT,omitempty"`
	Memo         string        `xml:"MEMO,omitempty"`
	LocationID   string        `xml:"LOCATIONID,omitempty"`
	DepartmentID string        `xml:"DEPARTMENTID,omitempty"`
	ProjectID    string        `xml:"PROJECTID,omitempty"`
	CustomerID   string        `xml:"CUSTOMERID,omitempty"`
	ItemID       string        `xml:"ITEMID,omitempty"`
	ClassID      string        `xml:"CLASSID,omitempty"`
	CustomFields []CustomField `xml:",any"`
}
