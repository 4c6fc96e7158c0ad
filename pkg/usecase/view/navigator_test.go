package view_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scholaragent/scholaragent/pkg/usecase/view"
)

func TestInitialScreen(t *testing.T) {
	nav := view.New()
	gt.Equal(t, nav.Active(), view.ScreenUpload)
	gt.False(t, nav.ChatUnlocked())
}

func TestUploadAndPapersAlwaysReachable(t *testing.T) {
	nav := view.New()
	gt.NoError(t, nav.Goto(view.ScreenPapers))
	gt.Equal(t, nav.Active(), view.ScreenPapers)
	gt.NoError(t, nav.Goto(view.ScreenUpload))
	gt.Equal(t, nav.Active(), view.ScreenUpload)
}

func TestChatLockedBeforeUpload(t *testing.T) {
	nav := view.New()
	err := nav.Goto(view.ScreenChat)
	gt.True(t, errors.Is(err, view.ErrChatLocked))
	gt.Equal(t, nav.Active(), view.ScreenUpload)
}

func TestChatUnlockIsPermanent(t *testing.T) {
	nav := view.New()
	nav.UnlockChat()
	gt.NoError(t, nav.Goto(view.ScreenChat))
	gt.Equal(t, nav.Active(), view.ScreenChat)

	// Leaving and coming back stays allowed; the gate is one-way
	gt.NoError(t, nav.Goto(view.ScreenUpload))
	gt.NoError(t, nav.Goto(view.ScreenChat))
	gt.Equal(t, nav.Active(), view.ScreenChat)
}
