package testutil

import "strings"

// Sender records everything sent to it. A nil Permissions map grants
// every permission.
type Sender struct {
	SenderName  string
	Permissions map[string]bool
	Messages    []string
}

// NewConsoleSender returns a Sender named "console" holding every permission.
func NewConsoleSender() *Sender {
	return &Sender{SenderName: "console"}
}

// NewPlayerSender returns a Sender holding only perms.
func NewPlayerSender(name string, perms ...string) *Sender {
	s := &Sender{SenderName: name, Permissions: map[string]bool{}}
	for _, p := range perms {
		s.Permissions[p] = true
	}
	return s
}

func (s *Sender) Name() string { return s.SenderName }

func (s *Sender) HasPermission(permission string) bool {
	if s.Permissions == nil {
		return true
	}
	return s.Permissions[permission]
}

func (s *Sender) SendMessage(text string) {
	s.Messages = append(s.Messages, text)
}

// Output joins every message with newlines.
func (s *Sender) Output() string {
	return strings.Join(s.Messages, "\n")
}

// Reset forgets recorded messages.
func (s *Sender) Reset() {
	s.Messages = nil
}
