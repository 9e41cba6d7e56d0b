package client

// Toast titles.
const (
	TitleError          = "Error"
	TitleSuccess        = "Success"
	TitleLoginFailed    = "Login failed"
	TitleUploadFailed   = "Upload failed"
	TitleGameCreated    = "Game created"
	TitleGameUpdated    = "Game updated"
	TitleGameDeleted    = "Game deleted"
	TitleGameDuplicated = "Game duplicated"
	TitleButtonAdded    = "Button added"
	TitleButtonUpdated  = "Button updated"
	TitleButtonDeleted  = "Button deleted"

	DescSettingsUpdated = "Settings updated successfully"
)

// Toast is a short notice about the outcome of a call.
type Toast struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier receives toasts.
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(t Toast)

// Notify calls f.
func (f NotifierFunc) Notify(t Toast) {
	f(t)
}

// NopNotifier drops every toast.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Toast) {}

func (c *Client) success(title, desc string) {
	c.notifier.Notify(Toast{Title: title, Description: desc})
}

func (c *Client) failure(title string, err error) {
	c.notifier.Notify(Toast{Title: title, Description: message(err), Destructive: true})
}
