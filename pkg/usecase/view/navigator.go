package view

import (
	"github.com/m-mizutani/goerr/v2"
)

// Screen identifies one of the top-level screens
type Screen string

const (
	ScreenUpload Screen = "upload"
	ScreenPapers Screen = "papers"
	ScreenChat   Screen = "chat"
)

var ErrChatLocked = goerr.New("chat is locked until a document is uploaded")

// Navigator is the top-level screen state machine. Upload and Papers are
// always reachable; Chat opens only after the first successful upload of
// the application session and stays open from then on, even across "new
// chat" resets.
type Navigator struct {
	active       Screen
	chatUnlocked bool
}

// New creates a navigator showing the upload screen
func New() *Navigator {
	return &Navigator{active: ScreenUpload}
}

// Active returns the currently shown screen
func (n *Navigator) Active() Screen {
	return n.active
}

// ChatUnlocked reports whether the chat screen is reachable
func (n *Navigator) ChatUnlocked() bool {
	return n.chatUnlocked
}

// UnlockChat opens the chat screen for the rest of the session. Callers
// invoke this with an upload result in hand; the navigator itself never
// watches uploads.
func (n *Navigator) UnlockChat() {
	n.chatUnlocked = true
}

// Goto switches the active screen. Moving to Chat before the gate is
// unlocked fails and leaves the active screen unchanged.
func (n *Navigator) Goto(s Screen) error {
	if s == ScreenChat && !n.chatUnlocked {
		return goerr.Wrap(ErrChatLocked, "navigation rejected", goerr.V("from", n.active))
	}
	n.active = s
	return nil
}
