package holdcloud

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/models"
)

// DefaultPollInterval is the default interval between state polls.
const DefaultPollInterval = 2 * time.Second

// CreateApp creates a container app in a project and returns its id.
func (c *Client) CreateApp(ctx context.Context, projectID int, spec models.ContainerAppSpec) (*models.ContainerApp, error) {
	if err := validateAppSpec(spec); err != nil {
		return nil, err
	}

	var app models.ContainerApp
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf(constants.PathContainerApps, projectID),
		body:   spec,
	}, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateInstances creates the instances of a container app.
// The platform replies with an empty object, so only the error is returned.
func (c *Client) CreateInstances(ctx context.Context, appID int, spec models.InstancesSpec) error {
	spec.Normalize()
	if err := validateInstancesSpec(spec); err != nil {
		return err
	}

	return c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf(constants.PathInstances, appID),
		body:   spec,
	}, nil)
}

// GetState returns the current state of a container app.
func (c *Client) GetState(ctx context.Context, appID int) (*models.AppState, error) {
	var state models.AppState
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf(constants.PathState, appID),
	}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Restart restarts a container app and returns the platform's reply.
func (c *Client) Restart(ctx context.Context, appID int) (string, error) {
	var msg string
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf(constants.PathRestart, appID),
	}, &msg)
	return msg, err
}

// Destroy deletes a container app and returns the platform's reply.
func (c *Client) Destroy(ctx context.Context, appID int) (string, error) {
	var msg string
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf(constants.PathContainerApp, appID),
	}, &msg)
	return msg, err
}

// WaitForState polls the state of a container app until it matches want
// (case-insensitive) or ctx is done. onPoll, if set, sees every state read.
//
// Errors from a poll end the wait. The last state read, if any, is returned
// along with the error.
func (c *Client) WaitForState(ctx context.Context, appID int, want string, interval time.Duration, onPoll func(models.AppState)) (*models.AppState, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *models.AppState
	for {
		state, err := c.GetState(ctx, appID)
		if err != nil {
			return last, err
		}
		last = state
		if onPoll != nil {
			onPoll(*state)
		}
		if strings.EqualFold(state.State, want) {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, fmt.Errorf("waiting for state %q (last %q): %w", want, state.State, ctx.Err())
		case <-ticker.C:
		}
	}
}
