package models

// WelcomeNote is seeded into an empty notes directory on first run. Its
// content doubles as a tour of what the preview can render.
func WelcomeNote() *Note {
	return NewNote("Welcome", welcomeContent)
}

const welcomeContent = `# Welcome

This is your notes folder. Every note is a plain markdown file on disk,
so you can edit them with any tool you like.

## At a glance

- inline text: normal, ` + "`code`" + `, *strong*, _emphasis_, ~~strikethrough~~
- [hyperlink](https://example.com) and embedded URL: <https://example.com>
- ` + "`# `" + ` headers, six levels deep
- ` + "`---`" + ` separator (horizontal line)
- ` + "`> `" + ` quotes, including GitHub alerts:

> [!TIP]
> Try Ctrl-E to edit, Ctrl-P to preview, Ctrl-L for the list.

## Lists

1. ordered items keep counting
2. even when they
3. start from any number

- bullets change glyph
  - as nesting
    - gets deeper

## Code

` + "```go" + `
func main() {
	fmt.Println("syntax highlighting included")
}
` + "```" + `

---

Press ? for all key bindings.
`
