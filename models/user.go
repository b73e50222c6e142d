// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// User is a record of the users API (JSONPlaceholder schema). Fields the
// server omits stay at their zero value.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the postal address of a [User].
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API sends them: decimal strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the employer of a [User].
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// IsZero reports whether u carries no id. The users API answers unknown
// ids with an empty object, which decodes to such a value.
func (u User) IsZero() bool {
	return u.ID == 0
}

// Title is the one-line label used in lists: "#id username (name)".
func (u User) Title() string {
	title := "#" + strconv.FormatInt(u.ID, 10) + " " + u.Username
	if u.Name != "" {
		title += " (" + u.Name + ")"
	}
	return title
}
