package ui

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/notemark/notemark/internal/models"
	"github.com/notemark/notemark/internal/storage"
	"github.com/notemark/notemark/internal/theme"
)

type App struct {
	screen        tcell.Screen
	quit          chan struct{}
	quitOnce      sync.Once
	mode          Mode
	currentView   View
	noteList      *NoteListView
	editor        *EditorView
	preview       *PreviewView
	helpDialog    *HelpDialog
	confirmDialog *ConfirmationDialog
	renameDialog  *RenameDialog
	store         storage.Storage
	settings      *Settings
	configDir     string
	statusMessage string
	current       *models.Note
}

type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// View selects which pane fills the main area. The note list stays visible on
// the left in every view.
type View int

const (
	ViewList View = iota
	ViewEditor
	ViewPreview
)

func NewApp() (*App, error) {
	// Get config directory
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Failed to get config directory: %v", err)
		configDir = "."
	}
	configDir = filepath.Join(configDir, "notemark")

	app := &App{
		quit:          make(chan struct{}),
		mode:          ModeNormal,
		currentView:   ViewPreview,
		noteList:      NewNoteListView(),
		editor:        NewEditorView(),
		preview:       NewPreviewView(),
		helpDialog:    NewHelpDialog(),
		confirmDialog: NewConfirmationDialog(),
		renameDialog:  NewRenameDialog(),
		configDir:     configDir,
	}

	// Load settings
	settings, err := LoadSettings(configDir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = DefaultSettings()
	}
	app.settings = settings
	applyTheme(theme.ByName(settings.Theme))

	if settings.NotesDir != "" {
		app.store = storage.NewFSStorageAt(settings.NotesDir)
	} else {
		store, err := storage.NewFSStorage()
		if err != nil {
			return nil, fmt.Errorf("opening note storage: %w", err)
		}
		app.store = store
	}

	return app, nil
}

func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	a.screen = s

	if err := s.Init(); err != nil {
		return err
	}

	defer func() {
		s.Fini()
		if r := recover(); r != nil {
			log.Printf("Panic during shutdown: %v", r)
		}
	}()

	s.SetStyle(tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg))
	s.Clear()

	if err := a.loadNotes(); err != nil {
		return err
	}
	a.loadSelectedNote()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Received interrupt signal, shutting down...")
		a.requestQuit()
	}()

	go a.handleEvents()
	a.draw()

	<-a.quit
	return nil
}

// loadNotes fills the list from storage, seeding a welcome note on first run.
func (a *App) loadNotes() error {
	if err := a.store.Init(); err != nil {
		return err
	}

	notes, err := a.store.ListNotes()
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		welcome := models.WelcomeNote()
		if err := a.store.WriteNote(welcome); err != nil {
			return fmt.Errorf("seeding welcome note: %w", err)
		}
		notes = []*models.Note{welcome}
	}

	a.noteList.SetNotes(notes)
	return nil
}

// requestQuit stops the event loop exactly once.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() {
		if a.screen != nil {
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
		close(a.quit)
	})
}

func (a *App) handleEvents() {
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-a.quit:
			return
		case ev, ok := <-eventChan:
			if !ok {
				// Channel closed, screen might be finalized
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				if a.handleKey(ev) {
					a.draw()
				}
			case *tcell.EventInterrupt:
				return
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	// Dialogs take precedence over all other input
	if a.helpDialog.IsVisible() {
		return a.helpDialog.HandleKey(ev)
	}
	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.HandleKey(ev)
	}
	if a.renameDialog.IsVisible() {
		return a.renameDialog.HandleKey(ev)
	}

	if cmd := keyToCommand(ev); cmd != CommandNone {
		a.executeCommand(cmd)
		return true
	}

	if a.mode == ModeSearch {
		return a.handleSearchKey(ev)
	}

	switch a.currentView {
	case ViewEditor:
		return a.editor.HandleKey(ev)
	case ViewList:
		return a.handleListKey(ev)
	case ViewPreview:
		return a.handlePreviewKey(ev)
	}
	return false
}

func (a *App) handleListKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyDown:
		a.executeCommand(CommandNextNote)
		return true
	case tcell.KeyUp:
		a.executeCommand(CommandPreviousNote)
		return true
	case tcell.KeyEnter:
		a.currentView = ViewPreview
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			a.executeCommand(CommandNextNote)
			return true
		case 'k':
			a.executeCommand(CommandPreviousNote)
			return true
		case '/':
			a.startSearch()
			return true
		case '?':
			a.helpDialog.Show()
			return true
		}
	}
	return false
}

func (a *App) handlePreviewKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyDown:
		a.preview.ScrollDown(1)
		return true
	case tcell.KeyUp:
		a.preview.ScrollUp(1)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			a.preview.ScrollDown(1)
			return true
		case 'k':
			a.preview.ScrollUp(1)
			return true
		case '/':
			a.startSearch()
			return true
		case '?':
			a.helpDialog.Show()
			return true
		}
	}
	return false
}

func (a *App) startSearch() {
	a.mode = ModeSearch
	a.statusMessage = ""
}

// handleSearchKey edits the search query with emacs-style editing.
func (a *App) handleSearchKey(ev *tcell.EventKey) bool {
	searchState := a.noteList.GetSearchState()
	prevQuery := searchState.Query()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		// Exit search mode but keep filter active
		a.mode = ModeNormal
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		searchState.DeleteChar()
	case tcell.KeyDelete, tcell.KeyCtrlD:
		searchState.DeleteCharForward()
	case tcell.KeyLeft:
		searchState.MoveCursorLeft()
	case tcell.KeyRight:
		searchState.MoveCursorRight()
	case tcell.KeyHome, tcell.KeyCtrlA:
		searchState.MoveCursorStart()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		searchState.MoveCursorEnd()
	case tcell.KeyCtrlK:
		searchState.DeleteToEnd()
	case tcell.KeyCtrlW:
		searchState.DeleteWord()
	case tcell.KeyCtrlU:
		searchState.MoveCursorStart()
		searchState.DeleteToEnd()
	case tcell.KeyCtrlT:
		// Cycle search quality filter
		var message string
		switch searchState.GetMinScore() {
		case ScoreThresholdNone:
			searchState.SetMinScore(ScoreThresholdPermissive)
			message = "Search: Permissive mode (include marginal matches)"
		case ScoreThresholdPermissive:
			searchState.SetMinScore(ScoreThresholdNormal)
			message = "Search: Normal mode (balanced)"
		case ScoreThresholdNormal:
			searchState.SetMinScore(ScoreThresholdStrict)
			message = "Search: Strict mode (high quality matches only)"
		default:
			searchState.SetMinScore(ScoreThresholdNone)
			message = "Search: No filtering (all matches)"
		}
		a.statusMessage = message
		a.noteList.UpdateSearch()
		a.loadSelectedNote()
	case tcell.KeyRune:
		searchState.InsertChar(ev.Rune())
	}

	if searchState.Query() != prevQuery {
		a.noteList.UpdateSearch()
		a.loadSelectedNote()
	}
	return true
}

func (a *App) executeCommand(cmd Command) {
	switch cmd {
	case CommandQuit:
		a.requestQuit()
	case CommandNextNote:
		a.saveEditorToCurrent()
		a.noteList.SelectNext()
		a.loadSelectedNote()
		a.statusMessage = ""
	case CommandPreviousNote:
		a.saveEditorToCurrent()
		a.noteList.SelectPrevious()
		a.loadSelectedNote()
		a.statusMessage = ""
	case CommandSwitchToList:
		a.currentView = ViewList
	case CommandSwitchToEditor:
		a.currentView = ViewEditor
	case CommandSwitchToPreview:
		a.saveEditorToCurrent()
		a.currentView = ViewPreview
	case CommandNewNote:
		a.createNewNote()
	case CommandSaveNote:
		a.saveCurrentNote()
	case CommandDeleteNote:
		a.confirmNoteDeletion()
	case CommandRenameNote:
		a.promptRename()
	case CommandScrollDown:
		if a.currentView == ViewPreview {
			a.preview.ScrollDown(a.settings.ScrollStep)
		}
	case CommandScrollUp:
		if a.currentView == ViewPreview {
			a.preview.ScrollUp(a.settings.ScrollStep)
		}
	}
}

// loadSelectedNote syncs the editor and preview to the list selection.
func (a *App) loadSelectedNote() {
	note := a.noteList.Selected()
	if note == a.current {
		return
	}
	a.current = note
	if note != nil {
		a.editor.SetContent(note.Content)
	} else {
		a.editor.SetContent("")
	}
	a.preview.ResetScroll()
}

// saveEditorToCurrent copies the editor buffer into the in-memory note. The
// note reaches disk on an explicit save.
func (a *App) saveEditorToCurrent() {
	if a.current == nil || !a.editor.Modified() {
		return
	}
	a.current.Content = a.editor.Content()
	a.current.Touch()
}

func (a *App) createNewNote() {
	a.saveEditorToCurrent()

	title := fmt.Sprintf("New Note %d", len(a.noteList.Notes())+1)
	note := models.NewNote(title, "Start writing...")
	if err := a.store.WriteNote(note); err != nil {
		a.statusMessage = "Error creating note: " + err.Error()
		log.Printf("Failed to create note %q: %v", title, err)
		return
	}

	a.noteList.SetNotes(append(a.noteList.Notes(), note))
	a.noteList.SelectNote(note)
	a.current = note
	a.editor.SetContent(note.Content)
	a.preview.ResetScroll()
	a.currentView = ViewEditor
	a.statusMessage = "Created: " + title
}

func (a *App) saveCurrentNote() {
	a.saveEditorToCurrent()
	if a.current == nil {
		return
	}
	if err := a.store.WriteNote(a.current); err != nil {
		a.statusMessage = "Error saving: " + err.Error()
		log.Printf("Failed to save note %q: %v", a.current.Title, err)
		return
	}
	a.editor.ClearModified()
	a.statusMessage = "Saved: " + a.current.Title
}

// confirmNoteDeletion shows a confirmation dialog before deleting the
// selected note.
func (a *App) confirmNoteDeletion() {
	note := a.noteList.Selected()
	if note == nil {
		return
	}

	message := fmt.Sprintf("Delete '%s'? This cannot be undone.", note.Title)
	a.confirmDialog.Show("Delete Note", message, func() {
		a.deleteNote(note)
	}, nil)
}

func (a *App) deleteNote(note *models.Note) {
	if err := a.store.DeleteNote(note.Title); err != nil {
		a.statusMessage = "Error deleting: " + err.Error()
		log.Printf("Failed to delete note %q: %v", note.Title, err)
		return
	}

	notes := a.noteList.Notes()
	for i, n := range notes {
		if n == note {
			notes = append(notes[:i], notes[i+1:]...)
			break
		}
	}
	a.noteList.SetNotes(notes)
	a.current = nil
	a.loadSelectedNote()
	a.statusMessage = "Deleted: " + note.Title
}

func (a *App) promptRename() {
	note := a.noteList.Selected()
	if note == nil {
		return
	}

	a.renameDialog.Show("Enter Note Name", note.Title, func(newTitle string) {
		if newTitle == note.Title {
			return
		}
		oldTitle := note.Title
		note.Title = newTitle
		note.Touch()
		if err := a.store.RenameNote(oldTitle, note); err != nil {
			note.Title = oldTitle
			a.statusMessage = "Error renaming: " + err.Error()
			log.Printf("Failed to rename note %q: %v", oldTitle, err)
			return
		}
		a.statusMessage = fmt.Sprintf("Renamed '%s' to '%s'", oldTitle, newTitle)
	})
}

func (a *App) draw() {
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	a.screen.HideCursor()

	areas := createLayout(w, h)
	a.noteList.Draw(a.screen, areas.NoteList, a.currentView == ViewList)

	switch a.currentView {
	case ViewEditor:
		a.editor.Draw(a.screen, areas.Main, true)
	default:
		title := ""
		if note := a.noteList.Selected(); note != nil {
			title = note.Title
		}
		a.preview.Draw(a.screen, areas.Main, a.currentView == ViewPreview, title, a.editor.Content())
	}

	a.drawStatusBar()

	// Dialogs draw on top of everything
	a.helpDialog.Draw(a.screen)
	a.confirmDialog.Draw(a.screen)
	a.renameDialog.Draw(a.screen)

	a.screen.Show()
}

func (a *App) drawStatusBar() {
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)

	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, style)
	}

	searchState := a.noteList.GetSearchState()
	modeStr := ""
	switch a.mode {
	case ModeNormal:
		modeStr = "NORMAL"
		if searchState.Query() != "" {
			modeStr += "  filter:/" + searchState.Query()
		}
	case ModeSearch:
		modeStr = "/" + searchState.Query()
	}

	drawText(a.screen, 0, h-1, style, modeStr)

	// Draw cursor for search mode
	if a.mode == ModeSearch {
		cursorX := 1 + searchState.cursorPos // 1 for the "/" prefix
		cursorStyle := style.Reverse(true)
		if searchState.cursorPos < len(searchState.query) {
			a.screen.SetContent(cursorX, h-1, rune(searchState.query[searchState.cursorPos]), nil, cursorStyle)
		} else {
			a.screen.SetContent(cursorX, h-1, ' ', nil, cursorStyle)
		}
	}

	// Right-aligned note count plus an unsaved-changes marker
	countStr := fmt.Sprintf("%d/%d", len(a.noteList.filtered), len(a.noteList.Notes()))
	if a.editor.Modified() {
		countStr = "[+] " + countStr
	}
	drawText(a.screen, w-len(countStr)-1, h-1, style, countStr)

	// Show status message if any
	if a.statusMessage != "" {
		msgStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorYellow)
		maxMsgWidth := w - len(modeStr) - len(countStr) - 4
		msg := a.statusMessage
		if len(msg) > maxMsgWidth && maxMsgWidth > 3 {
			msg = msg[:maxMsgWidth-3] + "..."
		}
		if maxMsgWidth > 0 {
			drawText(a.screen, len(modeStr)+2, h-1, msgStyle, msg)
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	pos := 0
	for _, r := range text {
		s.SetContent(x+pos, y, r, nil, style)
		pos++
	}
}

// drawTextWithHighlight draws text with specified rune positions highlighted
func drawTextWithHighlight(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string, highlightPositions []int) {
	highlightMap := make(map[int]bool)
	for _, pos := range highlightPositions {
		highlightMap[pos] = true
	}

	highlightStyle := style.Foreground(ColorHighlight).Bold(true)

	screenPos := 0
	for runeIdx, r := range []rune(text) {
		if screenPos >= maxWidth {
			break
		}

		charStyle := style
		if highlightMap[runeIdx] {
			charStyle = highlightStyle
		}

		s.SetContent(x+screenPos, y, r, nil, charStyle)
		screenPos++
	}
}
