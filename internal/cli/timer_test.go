package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/bittrack/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerMinutes(t *testing.T) {
	assert.Equal(t, 0, timerMinutes(0))
	assert.Equal(t, 0, timerMinutes(-time.Minute))
	assert.Equal(t, 0, timerMinutes(59*time.Second))
	assert.Equal(t, 1, timerMinutes(time.Minute))
	assert.Equal(t, 90, timerMinutes(90*time.Minute+59*time.Second))
}

func TestTimerModel_SaveQuits(t *testing.T) {
	m := newTimerModel("TechStartup Website")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	tm := next.(timerModel)

	assert.True(t, tm.saved)
	assert.True(t, tm.done)
	assert.NotNil(t, cmd)
	assert.Empty(t, tm.View())
}

func TestTimerModel_CancelDiscards(t *testing.T) {
	m := newTimerModel("TechStartup Website")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm := next.(timerModel)

	assert.False(t, tm.saved)
	assert.True(t, tm.done)
	assert.NotNil(t, cmd)
}

func TestTimerModel_ViewShowsProjectAndKeys(t *testing.T) {
	m := newTimerModel("TechStartup Website")

	view := ansi.ReplaceAllString(m.View(), "")
	assert.Contains(t, view, "TechStartup Website")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "stop & log")
	assert.Equal(t, 0, m.Minutes())
}

func TestTimerModel_StartsRunningAndPauses(t *testing.T) {
	d := teatest.New(t, newTimerModel("TechStartup Website")).Start()

	tm := d.Model.(timerModel)
	require.True(t, tm.stopwatch.Running())
	assert.NotContains(t, ansi.ReplaceAllString(d.View(), ""), "paused")

	d.PressSpace()
	tm = d.Model.(timerModel)
	assert.False(t, tm.stopwatch.Running())
	assert.Contains(t, ansi.ReplaceAllString(d.View(), ""), "paused")

	d.PressKey('p')
	tm = d.Model.(timerModel)
	assert.True(t, tm.stopwatch.Running())
}

func TestTimerModel_DriverSeesQuit(t *testing.T) {
	d := teatest.New(t, newTimerModel("TechStartup Website")).Start()

	d.PressEnter()
	require.True(t, d.Quitting)
	assert.True(t, d.Model.(timerModel).saved)

	// Input after quitting is ignored.
	d.PressEsc()
	assert.True(t, d.Model.(timerModel).saved)
}

func TestTimerModel_EscDiscards(t *testing.T) {
	d := teatest.New(t, newTimerModel("E-commerce Mobile App")).Start()

	d.PressEsc()
	require.True(t, d.Quitting)
	assert.False(t, d.Model.(timerModel).saved)
}
