package models

import (
	"net/url"
	"strconv"
)

// MissionFilter narrows the mission list; zero fields are not sent.
type MissionFilter struct {
	Name            string
	Status          string
	OwnedBy         int
	JoinedBy        int
	ExcludeOwnedBy  int
	ExcludeJoinedBy int
}

// Query encodes the filter the way the API reads it from the query string
func (f MissionFilter) Query() url.Values {
	q := url.Values{}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	setID := func(key string, id int) {
		if id > 0 {
			q.Set(key, strconv.Itoa(id))
		}
	}
	setID("owned_by", f.OwnedBy)
	setID("joined_by", f.JoinedBy)
	setID("exclude_owned_by", f.ExcludeOwnedBy)
	setID("exclude_joined_by", f.ExcludeJoinedBy)
	return q
}
