// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

// ExpensePaymentTypes returns the accessor for expense payment type
// records.
func (c *Client) ExpensePaymentTypes() *API {
	return c.NewAPI("EXPENSEPAYMENTTYPE")
}

// ChargeCardTransactions returns the accessor for charge card
// transactions.  Creation predates the generic create verb, so Post
// wraps payloads under record_cctransaction.
func (c *Client) ChargeCardTransactions() *API {
	return c.NewAPI("CCTRANSACTION", WithLegacyPost("record_cctransaction"))
}

// ExpenseReports returns the accessor for employee expense reports.
// Creation uses the legacy create_expensereport verb.
func (c *Client) ExpenseReports() *API {
	return c.NewAPI("EEXPENSES", WithLegacyPost("create_expensereport"))
}

// ReimbursementPayments returns the accessor for employee payment
// reversals.  Creation uses the legacy create_reversepayment verb.
func (c *Client) ReimbursementPayments() *API {
	return c.NewAPI("EPPAYMENT", WithLegacyPost("create_reversepayment"))
}

// ExpensePaymentType is a typed create/update payload.
type ExpensePaymentType struct {
	RecordNo        Int           `xml:"RECORDNO,omitempty"`
	Name            string        `xml:"NAME,omitempty"`
	Description     string        `xml:"DESCRIPTION,omitempty"`
	NonReimbursable Bool          `xml:"NONREIMBURSABLE,omitempty"`
	OffsetAcctNo    string        `xml:"OFFSETACCTNO,omitempty"`
	Status          string        `xml:"STATUS,omitempty"`
	CustomFields    []CustomField `xml:",any"`
}
