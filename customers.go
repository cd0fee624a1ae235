// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

// Customers returns the accessor for customer records.
func (c *Client) Customers() *API {
	return c.NewAPI("CUSTOMER")
}

// UpdateCustomers returns the accessor used to update customer details
// through the update_customer object.
func (c *Client) UpdateCustomers() *API {
	return c.NewAPI("update_customer")
}

// Customer is a typed create/update payload for customer records.
type Customer struct {
	RecordNo       Int           `xml:"RECORDNO,omitempty"`
	CustomerID     string        `xml:"CUSTOMERID,omitempty"`
	Name           string        `xml:"NAME,omitempty"`
	DisplayContact *Contact      `xml:"DISPLAYCONTACT,omitempty"`
	Status         string        `xml:"STATUS,omitempty"`
	OneTime        Bool          `xml:"ONETIME,omitempty"`
	TermName       string        `xml:"TERMNAME,omitempty"`
	CustRepID      string        `xml:"CUSTREPID,omitempty"`
	ParentID       string        `xml:"PARENTID,omitempty"`
	CustomFields   []CustomField `xml:",any"`
}

// Contact describes the contact entity embedded in customer and
// vendor records.
type Contact struct {
	RecordNumber   Int           `xml:"RECORDNO,omitempty"`
	ContactName    string        `xml:"CONTACTNAME,omitempty"`
	Prefix         string        `xml:"PREFIX,omitempty"`
	FirstName      string        `xml:"FIRSTNAME,omitempty"`
	LastName       string        `xml:"LASTNAME,omitempty"`
	MI             string        `xml:"INITIAL,omitempty"`
	CompanyName    string        `xml:"COMPANYNAME,omitempty"`
	PrintAs        string        `xml:"PRINTAS,omitempty"`
	Taxable        Bool          `xml:"TAXABLE,omitempty"`
	TaxGroup       string        `xml:"TAXGROUP,omitempty"`
	PhoneNumber    string        `xml:"PHONE1,omitempty"`
	CellPhone      string        `xml:"CELLPHONE,omitempty"`
	FaxNumber      string        `xml:"FAX,omitempty"`
	EmailAddress   string        `xml:"EMAIL1,omitempty"`
	SecondaryEmail string        `xml:"EMAIL2,omitempty"`
	URL            string        `xml:"URL1,omitempty"`
	Visible        Bool          `xml:"VISIBLE,omitempty"`
	Status         string        `xml:"STATUS,omitempty"`
	WhenCreated    Datetime      `xml:"WHENCREATED,omitempty"`
	WhenModified   Datetime      `xml:"WHENMODIFIED,omitempty"`
	Address        *MailAddress  `xml:"MAILADDRESS,omitempty"`
	CustomFields   []CustomField `xml:",any"`
}

// MailAddress describes the mail address for a contact
type MailAddress struct {
	Addr1         string        `xml:"ADDRESS1,omitempty"`
	Addr2         string        `xml:"ADDRESS2,omitempty"`
	City          string        `xml:"CITY,omitempty"`
	StateProvince string        `xml:"STATE,omitempty"`
	ZipPostalCode string        `xml:"ZIP,omitempty"`
	Country       string        `xml:"COUNTRY,omitempty"`
	CountryCode   string        `xml:"COUNTRYCODE,omitempty"`
	CustomFields  []CustomField `xml:",any"`
}
