package holdcloud

import (
	"context"
	"fmt"
	"net/http"

	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/models"
	"github.com/samber/lo"
)

// ListServices lists the union services of a project.
// A nil query lists with the platform's default paging.
func (c *Client) ListServices(ctx context.Context, projectID int, query *models.ListQuery) (*models.ServiceList, error) {
	var list models.ServiceList
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf(constants.PathUnionServices, projectID),
		query:  query.Values(),
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// CheckNameTaken reports whether a service in the project already uses name.
//
// Only the first page of the filtered listing is inspected, and only an exact
// name match counts: a non-zero total with no exact match is not a conflict.
func (c *Client) CheckNameTaken(ctx context.Context, projectID int, name string) (models.NameCheck, error) {
	list, err := c.ListServices(ctx, projectID, &models.ListQuery{
		ItemsPerPage: constants.NameCheckPageSize,
		Page:         1,
		FilterBy:     fmt.Sprintf("name,^%s$,", name),
		SortBy:       "a,name",
	})
	if err != nil {
		return models.NameCheck{}, err
	}

	existing, found := lo.Find(list.Items, func(s models.Service) bool {
		return s.Name == name
	})
	if !found {
		return models.NameCheck{Conflict: false}, nil
	}

	return models.NameCheck{Conflict: true, ExistingID: existing.ID}, nil
}
