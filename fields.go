// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

// dimensionFields maps each dimension to the field list GetAll requests
// when the caller supplies none.
var dimensionFields = map[string][]string{
	"ARINVOICE": {
		"RECORDNO", "RECORDID", "CUSTOMERID", "CUSTOMERNAME", "STATE",
		"WHENCREATED", "WHENDUE", "TOTALENTERED", "TOTALDUE", "CURRENCY",
		"DESCRIPTION",
	},
	"ARADJUSTMENT": {
		"RECORDNO", "RECORDID", "CUSTOMERID", "STATE", "WHENCREATED",
		"TOTALENTERED", "CURRENCY", "DESCRIPTION",
	},
	"CUSTOMER": {
		"RECORDNO", "CUSTOMERID", "NAME", "STATUS", "DISPLAYCONTACT.EMAIL1",
	},
	"VENDOR": {
		"RECORDNO", "VENDORID", "NAME", "STATUS",
	},
	"EXPENSEPAYMENTTYPE": {
		"RECORDNO", "NAME", "DESCRIPTION", "NONREIMBURSABLE", "OFFSETACCTNO",
		"STATUS",
	},
	"CCTRANSACTION": {
		"RECORDNO", "RECORDID", "CARDID", "DESCRIPTION", "PAYDATE",
		"TRX_TOTALENTERED", "STATE",
	},
	"EEXPENSES": {
		"RECORDNO", "RECORDID", "EMPLOYEEID", "STATE", "WHENCREATED",
		"TOTALENTERED", "CURRENCY", "DESCRIPTION",
	},
	"EPPAYMENT": {
		"RECORDNO", "RECORDID", "EMPLOYEEID", "STATE", "WHENCREATED",
		"TOTALENTERED", "CURRENCY",
	},
	"LOCATION": {
		"RECORDNO", "LOCATIONID", "NAME", "STATUS",
	},
	"DEPARTMENT": {
		"RECORDNO", "DEPARTMENTID", "TITLE", "STATUS",
	},
	"PROJECT": {
		"RECORDNO", "PROJECTID", "NAME", "STATUS", "PARENTID",
	},
	"CLASS": {
		"RECORDNO", "CLASSID", "NAME", "STATUS",
	},
	"ITEM": {
		"RECORDNO", "ITEMID", "NAME", "STATUS", "PRODUCTLINEID",
	},
	"EMPLOYEE": {
		"RECORDNO", "EMPLOYEEID", "TITLE", "STATUS", "LOCATIONID",
		"DEPARTMENTID",
	},
	"GLACCOUNT": {
		"RECORDNO", "ACCOUNTNO", "TITLE", "ACCOUNTTYPE", "STATUS",
	},
}

// DefaultFields returns the default field list for a dimension,
// falling back to RECORDNO for unmapped dimensions.
func DefaultFields(dimension string) []string {
	if fields, ok := dimensionFields[dimension]; ok {
		return fields
	}
	return []string{"RECORDNO"}
}
