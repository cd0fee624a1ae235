// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intacct

// ReadReports returns the accessor for the readReport function family,
// which runs saved interactive custom reports.
func (c *Client) ReadReports() *API {
	return c.NewAPI("readReport")
}
