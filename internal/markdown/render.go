package markdown

// Render converts markdown source into styled lines sized for a viewport
// width columns wide. Every call is a fresh transform: no state survives
// between invocations, so identical input always yields identical output.
func Render(source string, width int) Text {
	events := Tokenize([]byte(source))
	return NewWriter(width, nil).Run(events)
}
