package browse

import (
	"errors"
	"testing"

	"github.com/desertthunder/slowdive/internal/models"
)

func TestOptimistic(t *testing.T) {
	t.Run("Flips Immediately", func(t *testing.T) {
		var o Optimistic[bool]

		displayed := o.Begin(false, true)
		if !displayed {
			t.Error("expected optimistic value to display immediately")
		}
		if !o.Pending() {
			t.Error("expected mutation to be pending")
		}
	})

	t.Run("Server Value Wins On Success", func(t *testing.T) {
		var o Optimistic[bool]

		o.Begin(false, true)
		// Server disagrees with the optimistic guess
		displayed := o.Resolve(false, nil)
		if displayed {
			t.Error("expected displayed state to match server value")
		}
		if o.Pending() {
			t.Error("expected mutation resolved")
		}
	})

	t.Run("Reverts To Snapshot On Failure", func(t *testing.T) {
		var o Optimistic[bool]

		o.Begin(true, false)
		displayed := o.Resolve(false, errors.New("network error"))
		if !displayed {
			t.Error("expected pre-toggle value after failure")
		}
	})

	t.Run("Settings Revert Touches Only The Changed Flag", func(t *testing.T) {
		var o Optimistic[models.UserSettings]

		current := models.UserSettings{CollectionMode: true, ValuationMode: true}
		next := current
		next.PriceComparisonMode = true

		displayed := o.Begin(current, next)
		if !displayed.PriceComparisonMode {
			t.Error("expected optimistic flag set")
		}

		displayed = o.Resolve(models.UserSettings{}, errors.New("save failed"))
		if displayed.PriceComparisonMode {
			t.Error("expected changed flag reverted")
		}
		if !displayed.CollectionMode || !displayed.ValuationMode {
			t.Error("expected untouched flags preserved")
		}
	})
}
