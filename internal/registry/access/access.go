// Package access gates owner-only operations and the emergency pause.
package access

import (
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// Controller tracks the current owner identity and the pause flag. It is not
// safe for concurrent use on its own; the owning aggregate serializes all
// mutations behind a single writer.
type Controller struct {
	owner  id.AgencyID
	paused bool
}

func New(owner id.AgencyID) *Controller {
	return &Controller{owner: owner}
}

// Restore resets the controller to persisted state during recovery.
func (c *Controller) Restore(owner id.AgencyID, paused bool) {
	c.owner = owner
	c.paused = paused
}

func (c *Controller) Owner() id.AgencyID { return c.owner }

func (c *Controller) Paused() bool { return c.paused }

// RequireOwner rejects callers other than the current owner.
func (c *Controller) RequireOwner(caller id.AgencyID) error {
	if caller != c.owner {
		return dErrors.New(dErrors.CodeNotAuthorized, "caller is not the registry owner")
	}
	return nil
}

// RequireNotPaused is the precondition applied to every mutating operation
// while the emergency stop is active. TogglePause and TransferOwnership are
// exempt so the owner can recover a paused registry.
func (c *Controller) RequireNotPaused() error {
	if c.paused {
		return dErrors.New(dErrors.CodeRegistryPaused, "registry is paused")
	}
	return nil
}

// TransferOwnership hands the registry to a new owner identity.
func (c *Controller) TransferOwnership(caller, newOwner id.AgencyID) error {
	if err := c.RequireOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return dErrors.New(dErrors.CodeInvalidOwner, "new owner identity must not be empty")
	}
	c.owner = newOwner
	return nil
}

// TogglePause flips the pause flag and returns the new state.
func (c *Controller) TogglePause(caller id.AgencyID) (bool, error) {
	if err := c.RequireOwner(caller); err != nil {
		return c.paused, err
	}
	c.paused = !c.paused
	return c.paused, nil
}
