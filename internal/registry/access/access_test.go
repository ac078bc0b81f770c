package access

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "fraudregistry/pkg/domain-errors"
)

type AccessSuite struct {
	suite.Suite
	ctrl *Controller
}

func TestAccessSuite(t *testing.T) {
	suite.Run(t, new(AccessSuite))
}

func (s *AccessSuite) SetupTest() {
	s.ctrl = New("owner-1")
}

func (s *AccessSuite) TestOwnerChecks() {
	s.NoError(s.ctrl.RequireOwner("owner-1"))

	err := s.ctrl.RequireOwner("agency-a")
	s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
}

func (s *AccessSuite) TestPauseToggle() {
	s.False(s.ctrl.Paused())
	s.NoError(s.ctrl.RequireNotPaused())

	s.Run("non-owner cannot toggle", func() {
		_, err := s.ctrl.TogglePause("agency-a")
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
		s.False(s.ctrl.Paused())
	})

	s.Run("owner toggles on and off", func() {
		paused, err := s.ctrl.TogglePause("owner-1")
		s.Require().NoError(err)
		s.True(paused)

		err = s.ctrl.RequireNotPaused()
		s.True(dErrors.HasCode(err, dErrors.CodeRegistryPaused))

		paused, err = s.ctrl.TogglePause("owner-1")
		s.Require().NoError(err)
		s.False(paused)
		s.NoError(s.ctrl.RequireNotPaused())
	})
}

func (s *AccessSuite) TestTransferOwnership() {
	s.Run("non-owner cannot transfer", func() {
		err := s.ctrl.TransferOwnership("agency-a", "agency-b")
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
		s.Equal("owner-1", s.ctrl.Owner().String())
	})

	s.Run("empty new owner rejected", func() {
		err := s.ctrl.TransferOwnership("owner-1", "")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidOwner))
	})

	s.Run("transfer is immediate and total", func() {
		s.Require().NoError(s.ctrl.TransferOwnership("owner-1", "owner-2"))
		s.Equal("owner-2", s.ctrl.Owner().String())

		// The previous owner keeps no control.
		err := s.ctrl.RequireOwner("owner-1")
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
		s.NoError(s.ctrl.RequireOwner("owner-2"))
	})

	s.Run("transfer works while paused", func() {
		_, err := s.ctrl.TogglePause("owner-2")
		s.Require().NoError(err)

		s.Require().NoError(s.ctrl.TransferOwnership("owner-2", "owner-3"))
		s.True(s.ctrl.Paused())
		s.Equal("owner-3", s.ctrl.Owner().String())
	})
}

func (s *AccessSuite) TestRestore() {
	s.ctrl.Restore("recovered-owner", true)
	s.Equal("recovered-owner", s.ctrl.Owner().String())
	s.True(s.ctrl.Paused())
}
