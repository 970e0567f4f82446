package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStateCommand(t *testing.T) {
	t.Run("should create command with valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewChangeOrderStateCommand(id, order.Confirmed, order.Barista)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, order.Confirmed, cmd.Target())
		assert.Equal(t, order.Barista, cmd.Role())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStateCommand(kernel.UUID{}, order.Confirmed, order.Barista)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown target state", func(t *testing.T) {
		_, err := commands.NewChangeOrderStateCommand(kernel.NewUUID(), order.State(42), order.Barista)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := commands.NewChangeOrderStateCommand(kernel.NewUUID(), order.Confirmed, order.Role("cashier"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		cmd := commands.ChangeOrderStateCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStateCommandIsNotConstructed)
	})
}
