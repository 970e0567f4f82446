package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrGetOrderStatesQueryIsNotConstructed = errors.New(
	"GetOrderStatesQuery must be created via NewGetOrderStatesQuery constructor",
)

// GetOrderStatesQuery lists the lifecycle states with their display names and
// allowed successors, for clients that render state pickers.
type GetOrderStatesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatesQuery() GetOrderStatesQuery {
	return GetOrderStatesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatesQueryIsNotConstructed)
}

type GetOrderStatesQueryResponse struct {
	Name           string
	DisplayName    string
	Terminal       bool
	AllowedTargets []string
}

// GetOrderStatesQueryHandler answers from the static transition table.
type GetOrderStatesQueryHandler struct{}

func NewGetOrderStatesQueryHandler() GetOrderStatesQueryHandler {
	return GetOrderStatesQueryHandler{}
}

// Handle returns the states in lifecycle order.
func (h GetOrderStatesQueryHandler) Handle(_ context.Context, query GetOrderStatesQuery) ([]GetOrderStatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	states := order.AllStates()
	responses := make([]GetOrderStatesQueryResponse, 0, len(states))
	for _, s := range states {
		allowed := s.AllowedTargets()
		targets := make([]string, 0, len(allowed))
		for _, t := range allowed {
			targets = append(targets, t.String())
		}

		responses = append(responses, GetOrderStatesQueryResponse{
			Name:           s.String(),
			DisplayName:    s.DisplayName(),
			Terminal:       s.IsTerminal(),
			AllowedTargets: targets,
		})
	}

	return responses, nil
}
