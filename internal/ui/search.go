package ui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// SearchState holds the state for search functionality
type SearchState struct {
	query         string
	cursorPos     int
	caseSensitive bool
	minScore      int // Minimum score threshold for matches
}

// Score threshold constants (based on raw fzf scores)
const (
	ScoreThresholdStrict     = 70 // Only high quality matches
	ScoreThresholdNormal     = 50 // Balanced (default)
	ScoreThresholdPermissive = 30 // Include marginal matches
	ScoreThresholdNone       = 0  // Accept all matches
)

// NewSearchState creates a new search state
func NewSearchState() *SearchState {
	return &SearchState{
		caseSensitive: false,
		minScore:      ScoreThresholdNormal,
	}
}

// Clear clears the search state
func (s *SearchState) Clear() {
	s.query = ""
	s.cursorPos = 0
}

// Query returns the current search query
func (s *SearchState) Query() string {
	return s.query
}

// SetMinScore sets the minimum score threshold
func (s *SearchState) SetMinScore(score int) {
	s.minScore = score
}

// GetMinScore returns the current minimum score threshold
func (s *SearchState) GetMinScore() int {
	return s.minScore
}

// InsertChar inserts a character at the cursor position
func (s *SearchState) InsertChar(ch rune) {
	if s.cursorPos >= len(s.query) {
		s.query += string(ch)
	} else {
		s.query = s.query[:s.cursorPos] + string(ch) + s.query[s.cursorPos:]
	}
	s.cursorPos++
}

// DeleteChar deletes the character before the cursor (backspace)
func (s *SearchState) DeleteChar() {
	if s.cursorPos > 0 {
		s.query = s.query[:s.cursorPos-1] + s.query[s.cursorPos:]
		s.cursorPos--
	}
}

// DeleteCharForward deletes the character at the cursor (delete)
func (s *SearchState) DeleteCharForward() {
	if s.cursorPos < len(s.query) {
		s.query = s.query[:s.cursorPos] + s.query[s.cursorPos+1:]
	}
}

// MoveCursorLeft moves cursor left
func (s *SearchState) MoveCursorLeft() {
	if s.cursorPos > 0 {
		s.cursorPos--
	}
}

// MoveCursorRight moves cursor right
func (s *SearchState) MoveCursorRight() {
	if s.cursorPos < len(s.query) {
		s.cursorPos++
	}
}

// MoveCursorStart moves cursor to start (Ctrl+A)
func (s *SearchState) MoveCursorStart() {
	s.cursorPos = 0
}

// MoveCursorEnd moves cursor to end (Ctrl+E)
func (s *SearchState) MoveCursorEnd() {
	s.cursorPos = len(s.query)
}

// DeleteToEnd deletes from cursor to end (Ctrl+K)
func (s *SearchState) DeleteToEnd() {
	s.query = s.query[:s.cursorPos]
}

// DeleteWord deletes the word before cursor (Ctrl+W)
func (s *SearchState) DeleteWord() {
	if s.cursorPos == 0 {
		return
	}

	// Find the start of the word
	start := s.cursorPos - 1
	for start > 0 && s.query[start] == ' ' {
		start--
	}
	for start > 0 && s.query[start-1] != ' ' {
		start--
	}

	s.query = s.query[:start] + s.query[s.cursorPos:]
	s.cursorPos = start
}

// MatchResult contains match score and positions
type MatchResult struct {
	Score     int
	Positions []int
}

// matchScore calculates the match score for a text against the search query
func (s *SearchState) matchScore(text string) int {
	result := s.matchWithPositions(text)
	return result.Score
}

// matchWithPositions calculates match score and positions for highlighting
func (s *SearchState) matchWithPositions(text string) MatchResult {
	if s.query == "" {
		return MatchResult{Score: 0, Positions: nil}
	}

	// Initialize fzf algo if needed
	algo.Init("default")

	searchText := text
	pattern := s.query
	if !s.caseSensitive {
		searchText = strings.ToLower(text)
		pattern = strings.ToLower(s.query)
	}

	chars := util.ToChars([]byte(searchText))
	patternRunes := []rune(pattern)

	// Use fzf v2 algorithm with position tracking
	slab := util.MakeSlab(16384, 1024)
	result, positions := algo.FuzzyMatchV2(s.caseSensitive, false, true, &chars, patternRunes, true, slab)

	if result.Start < 0 {
		return MatchResult{Score: -1, Positions: nil}
	}

	var matchPositions []int
	if positions != nil {
		// fzf returns positions as indices into the Chars array,
		// which already corresponds to rune positions
		matchPositions = make([]int, len(*positions))
		copy(matchPositions, *positions)
	}

	return MatchResult{Score: result.Score, Positions: matchPositions}
}

// MatchNote checks if a note matches the search query
func (s *SearchState) MatchNote(title, content string) (bool, int) {
	if s.query == "" {
		return true, 0
	}

	// Try matching title first
	titleScore := s.matchScore(title)
	if titleScore >= 0 {
		if s.minScore == 0 || titleScore >= s.minScore {
			return true, titleScore
		}
	}

	// Try matching content
	contentScore := s.matchScore(content)
	if contentScore >= 0 {
		if s.minScore == 0 || contentScore >= s.minScore {
			return true, contentScore
		}
	}

	return false, -1
}

// MatchNoteWithPositions checks if a note matches and returns title positions
// for highlighting. Content matches report no positions since the content is
// not shown in the list.
func (s *SearchState) MatchNoteWithPositions(title, content string) (bool, int, MatchResult) {
	if s.query == "" {
		return true, 0, MatchResult{Score: 0, Positions: nil}
	}

	titleResult := s.matchWithPositions(title)
	if titleResult.Score >= 0 {
		if s.minScore == 0 || titleResult.Score >= s.minScore {
			return true, titleResult.Score, titleResult
		}
	}

	contentScore := s.matchScore(content)
	if contentScore >= 0 {
		if s.minScore == 0 || contentScore >= s.minScore {
			return true, contentScore, MatchResult{Score: contentScore, Positions: nil}
		}
	}

	return false, -1, MatchResult{Score: -1, Positions: nil}
}
