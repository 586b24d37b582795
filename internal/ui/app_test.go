package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlink/mdlink/internal/render"
)

// stubRenderer labels the URLs it knows and falls back for the rest.
type stubRenderer struct {
	labels map[string]string
}

func (s stubRenderer) Line(raw string, line int) render.Result {
	res := render.Result{Input: raw, Line: line}
	if label, ok := s.labels[raw]; ok {
		res.Label = label
		res.Outcome = render.OutcomeMatched
		res.Output = "[" + label + "](" + raw + ")"
		return res
	}
	res.Outcome = render.OutcomeFallback
	res.Output = "<" + raw + ">"
	return res
}

const issueURL = "https://github.com/rust-lang/rust/issues/123"

func testProfiles() []Profile {
	general := stubRenderer{labels: map[string]string{
		issueURL: "`rust-lang/rust`#123",
	}}
	home := stubRenderer{labels: map[string]string{}}
	return []Profile{
		{Name: "general", Renderer: general},
		{Name: "home", Renderer: home},
	}
}

// press runs one message through Update and returns the typed model.
func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	require.True(t, ok)
	return typed, cmd
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := New(testProfiles())

	t.Run("InputFocused", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.input.Focused())
	})

	t.Run("FirstProfileSelected", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "general", m.profile().Name)
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, m.history)
	})

	t.Run("NoProfilesFallsBackToGeneral", func(t *testing.T) {
		t.Parallel()
		empty := New(nil)
		assert.Equal(t, "general", empty.profile().Name)
		assert.Nil(t, empty.renderer())
	})
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("RendersAndRecordsHistory", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue(issueURL)

		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)

		msg, ok := cmd().(RenderedMsg)
		require.True(t, ok)
		assert.Equal(t, render.OutcomeMatched, msg.Result.Outcome)
		assert.Equal(t, "general", msg.Profile)
		assert.Equal(t, 1, msg.Result.Line)

		m, _ = press(t, m, msg)
		require.Len(t, m.history, 1)
		require.NotNil(t, m.current)
		assert.Equal(t, issueURL, m.current.Raw)
		assert.Empty(t, m.input.Value())
	})

	t.Run("EmptyInputIsNoop", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())

		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.Empty(t, m.history)
	})

	t.Run("WhitespaceOnlyIsNoop", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue("   ")

		_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
	})

	t.Run("NumbersSubmissionsSequentially", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())

		m.input.SetValue("https://first.example")
		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		first := cmd().(RenderedMsg)
		m, _ = press(t, m, first)

		m.input.SetValue("https://second.example")
		_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		second := cmd().(RenderedMsg)

		assert.Equal(t, 1, first.Result.Line)
		assert.Equal(t, 2, second.Result.Line)
	})
}

func TestProfileCycle(t *testing.T) {
	t.Parallel()

	t.Run("WrapsAround", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, "home", m.profile().Name)

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, "general", m.profile().Name)
	})

	t.Run("SingleProfileIsNoop", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles()[:1])

		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Nil(t, cmd)
		assert.Equal(t, "general", m.profile().Name)
	})

	t.Run("ReRendersPreviewUnderNewProfile", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue(issueURL)

		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		require.NotNil(t, cmd)

		msg, ok := cmd().(PreviewedMsg)
		require.True(t, ok)
		assert.Equal(t, "home", msg.Profile)
		assert.Equal(t, render.OutcomeFallback, msg.Result.Outcome)

		m, _ = press(t, m, msg)
		require.NotNil(t, m.preview)
		assert.Equal(t, render.OutcomeFallback, m.preview.Outcome)
	})
}

func TestHistoryRecall(t *testing.T) {
	t.Parallel()

	rendered := func(raw string) RenderedMsg {
		return RenderedMsg{
			Raw:     raw,
			Profile: "general",
			Result:  render.Result{Input: raw, Outcome: render.OutcomeFallback, Output: "<" + raw + ">"},
		}
	}

	t.Run("UpRecallsPreviousSubmissions", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m, _ = press(t, m, rendered("https://a.example"))
		m, _ = press(t, m, rendered("https://b.example"))

		m.input.SetValue("htt")

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, "https://b.example", m.input.Value())

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, "https://a.example", m.input.Value())
	})

	t.Run("UpAtOldestStays", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m, _ = press(t, m, rendered("https://a.example"))

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, "https://a.example", m.input.Value())
	})

	t.Run("DownPastNewestRestoresDraft", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m, _ = press(t, m, rendered("https://a.example"))

		m.input.SetValue("my draft")
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
		require.Equal(t, "https://a.example", m.input.Value())

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, "my draft", m.input.Value())
	})

	t.Run("DownWithoutRecallIsNoop", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m, _ = press(t, m, rendered("https://a.example"))

		m.input.SetValue("typing")
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, "typing", m.input.Value())
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	m := New(testProfiles())
	m.input.SetValue("half a ur")
	m.preview = &render.Result{Outcome: render.OutcomeDropped}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, m.input.Value())
	assert.Nil(t, m.preview)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := New(testProfiles())
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Goodbye!\n", m.View())
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("TypingIssuesPreviewCmd", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())

		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
		assert.Equal(t, "h", m.input.Value())
		require.NotNil(t, cmd)
	})

	t.Run("MatchingPreviewApplied", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue("https://a.example")

		msg := PreviewedMsg{
			Raw:     "https://a.example",
			Profile: "general",
			Result:  render.Result{Outcome: render.OutcomeFallback, Output: "<https://a.example>"},
		}
		m, _ = press(t, m, msg)
		require.NotNil(t, m.preview)
		assert.Equal(t, render.OutcomeFallback, m.preview.Outcome)
	})

	t.Run("StalePreviewDiscarded", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue("https://b.example")

		msg := PreviewedMsg{
			Raw:     "https://a.example",
			Profile: "general",
			Result:  render.Result{Outcome: render.OutcomeFallback},
		}
		m, _ = press(t, m, msg)
		assert.Nil(t, m.preview)
	})

	t.Run("WrongProfileDiscarded", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		m.input.SetValue("https://a.example")

		msg := PreviewedMsg{
			Raw:     "https://a.example",
			Profile: "home",
			Result:  render.Result{Outcome: render.OutcomeFallback},
		}
		m, _ = press(t, m, msg)
		assert.Nil(t, m.preview)
	})
}

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("ShowsProfileIndicator", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		view := m.View()
		assert.Contains(t, view, "Profile:")
		assert.Contains(t, view, "general")
	})

	t.Run("ShowsDetailAndHistoryAfterRender", func(t *testing.T) {
		t.Parallel()
		m := New(testProfiles())
		msg := RenderedMsg{
			Raw:     issueURL,
			Profile: "general",
			Result: render.Result{
				Input:   issueURL,
				Line:    1,
				Label:   "`rust-lang/rust`#123",
				Output:  "[`rust-lang/rust`#123](" + issueURL + ")",
				Outcome: render.OutcomeMatched,
			},
		}
		m, _ = press(t, m, msg)

		view := m.View()
		assert.Contains(t, view, "MATCHED")
		assert.Contains(t, view, "`rust-lang/rust`#123")
		assert.Contains(t, view, "History (1)")
	})
}

func TestEntry(t *testing.T) {
	t.Parallel()

	t.Run("LineShowsBadgeAndOutput", func(t *testing.T) {
		t.Parallel()
		e := Entry{
			Raw:     "https://a.example",
			Profile: "general",
			Result: render.Result{
				Outcome: render.OutcomeFallback,
				Output:  "<https://a.example>",
			},
		}
		line := e.Line()
		assert.Contains(t, line, "FALLBACK")
		assert.Contains(t, line, "<https://a.example>")
	})

	t.Run("LineFallsBackToRawWithoutOutput", func(t *testing.T) {
		t.Parallel()
		e := Entry{
			Raw:    "not a url",
			Result: render.Result{Outcome: render.OutcomeDropped},
		}
		assert.Contains(t, e.Line(), "not a url")
	})

	t.Run("DetailViewListsFields", func(t *testing.T) {
		t.Parallel()
		e := Entry{
			Raw:     issueURL,
			Profile: "work",
			Result: render.Result{
				Input:   issueURL,
				Label:   "`rust-lang/rust`#123",
				Output:  "[`rust-lang/rust`#123](" + issueURL + ")",
				Outcome: render.OutcomeMatched,
			},
		}
		detail := e.DetailView()
		assert.Contains(t, detail, "Outcome:")
		assert.Contains(t, detail, "Label:")
		assert.Contains(t, detail, "work")
		assert.Contains(t, detail, "recognized by a built-in service recognizer")
	})
}
