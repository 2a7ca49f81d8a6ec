package models

import (
	"net/url"
	"strconv"
)

// A union service is the platform's listing entry for a deployed container app.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind,omitempty"`
	Description string  `json:"description,omitempty"`
	Replicas    int     `json:"replicas"`
	CPU         float64 `json:"cpu"`
	Memory      int64   `json:"memory"`
	State       string  `json:"state,omitempty"`
}

// Response body for `GET project/{id}/unionservices`
type ServiceList struct {
	Items      []Service `json:"items"`
	TotalItems int       `json:"totalItems"`
}

// Pagination and filtering options for listing services.
// Zero fields are left out of the query string.
type ListQuery struct {
	ItemsPerPage int
	Page         int
	// Filter expression, e.g. `name,^web$,`
	FilterBy string
	// Sort expression, e.g. `a,name`
	SortBy string
}

// Encode the query as URL values.
func (q *ListQuery) Values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}

	if q.ItemsPerPage > 0 {
		v.Set("itemsPerPage", strconv.Itoa(q.ItemsPerPage))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.FilterBy != "" {
		v.Set("filterBy", q.FilterBy)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}

	return v
}

// Result of a service name uniqueness check.
type NameCheck struct {
	Conflict bool
	// ID of the service already using the name. Zero if there is no conflict.
	ExistingID int
}
