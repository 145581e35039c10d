// Command id3form is an interactive terminal form for editing the
// ID3v1 tag of a single MP3 file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/simonhull/id3v1"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7f57b4")).
			MarginBottom(1)
	labelStyle = lipgloss.NewStyle().
			Width(9).
			Foreground(lipgloss.Color("#9ba0bf"))
	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf")).
			MarginTop(1)
	errorStyle = statusStyle.
			Foreground(lipgloss.Color("#d46a6a"))
)

// Form field positions.
const (
	fieldTitle = iota
	fieldArtist
	fieldAlbum
	fieldYear
	fieldComment
	fieldGenre
	fieldTrack
	fieldCount
)

var labels = [fieldCount]string{"Title", "Artist", "Album", "Year", "Comment", "Genre", "Track"}

type model struct {
	tag    *id3v1.Tag
	inputs [fieldCount]textinput.Model
	focus  int
	status string
	failed bool
}

func newModel(tag *id3v1.Tag) model {
	m := model{tag: tag}

	values := [fieldCount]string{
		tag.Title(), tag.Artist(), tag.Album(), tag.Year(), tag.Comment(),
		tag.Get(id3v1.KeyGenre, ""), tag.Get(id3v1.KeyTrackNumber, ""),
	}
	limits := [fieldCount]int{30, 30, 30, 4, 30, 0, 3}

	for i := range m.inputs {
		in := textinput.New()
		in.SetValue(values[i])
		in.CharLimit = limits[i]
		in.Width = 32
		m.inputs[i] = in
	}
	m.inputs[fieldGenre].Placeholder = "Rock, Acid Jazz, ..."
	m.inputs[fieldTrack].Placeholder = "1-254"
	m.inputs[0].Focus()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.status = "quit without saving"
			return m, tea.Quit
		case "ctrl+s":
			if err := m.save(); err != nil {
				m.status = err.Error()
				m.failed = true
				return m, nil
			}
			m.status = "saved"
			return m, tea.Quit
		case "tab", "down", "enter":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

// save pushes the form values into the tag and writes it out.
func (m *model) save() error {
	m.tag.SetTitle(m.inputs[fieldTitle].Value())
	m.tag.SetArtist(m.inputs[fieldArtist].Value())
	m.tag.SetAlbum(m.inputs[fieldAlbum].Value())
	m.tag.SetYear(m.inputs[fieldYear].Value())
	m.tag.SetComment(m.inputs[fieldComment].Value())
	m.tag.SetGenreName(m.inputs[fieldGenre].Value())

	track := 0
	if v := m.inputs[fieldTrack].Value(); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("track %q is not a number", v)
		}
		track = n
	}
	if err := m.tag.SetTrack(track); err != nil {
		return err
	}

	return m.tag.Write()
}

func (m model) View() string {
	s := titleStyle.Render("Editing "+m.tag.Name()) + "\n"
	for i, in := range m.inputs {
		label := labelStyle.Render(labels[i])
		if i == m.focus {
			label = focusedLabelStyle.Render(labels[i])
		}
		s += lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()) + "\n"
	}

	status := "tab/↑/↓ move · ctrl+s save · esc quit"
	style := statusStyle
	if m.status != "" {
		status = m.status
		if m.failed {
			style = errorStyle
		}
	}
	return s + style.Render(status) + "\n"
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: id3form <mp3-file>")
		os.Exit(2)
	}

	tag, err := id3v1.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "id3form: %v\n", err)
		os.Exit(1)
	}
	defer tag.Close()

	if _, err := tea.NewProgram(newModel(tag)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "id3form: %v\n", err)
		os.Exit(1)
	}
}
