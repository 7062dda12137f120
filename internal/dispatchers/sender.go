package dispatchers

// Sender is whoever issued a command line.
type Sender interface {
	Name() string
	HasPermission(permission string) bool
	SendMessage(text string)
}

// SendLines sends each line as its own message.
func SendLines(sender Sender, lines ...string) {
	for _, line := range lines {
		sender.SendMessage(line)
	}
}
