package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartygym/internal/checkin"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/recommend"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/tui/components/badges"
	"github.com/julianstephens/smartygym/internal/tui/components/history"
	"github.com/julianstephens/smartygym/internal/tui/components/suggestion"
	"github.com/julianstephens/smartygym/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateBadges
	StateWorkout
	StateMorningForm
	StateNightForm
)

// tabCount is the number of states reachable with tab.
const tabCount = 4

var tabTitles = []string{"Today", "History", "Badges", "Workout"}

// historyDays is how many check-ins the history tab lists.
const historyDays = 30

type Model struct {
	store         storage.Provider
	checkins      *checkin.Service
	recommender   *recommend.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	historyModel  history.Model
	badgesModel   badges.Model
	suggestion    suggestion.Model
	form          *huh.Form
	morningForm   *MorningFormModel
	nightForm     *NightFormModel
	message       string
	errMsg        string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, checkins *checkin.Service, recommender *recommend.Service) Model {
	m := Model{
		store:        store,
		checkins:     checkins,
		recommender:  recommender,
		state:        StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		todayModel:   today.New(""),
		historyModel: history.New(0, 0),
		badgesModel:  badges.New(0, 0),
		suggestion:   suggestion.New(),
	}
	m.refresh()
	return m
}

// refresh reloads everything the tabs show from storage.
func (m *Model) refresh() {
	ctx := context.Background()

	date, err := m.checkins.Today()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	var rec *models.CheckinRecord
	if r, err := m.checkins.Get(ctx, date); err == nil {
		rec = &r
	} else if !errors.Is(err, storage.ErrNotFound) {
		m.errMsg = "Failed to load today's check-in: " + err.Error()
	}
	streak, _ := m.checkins.Streak(ctx)
	m.todayModel.SetRecord(date, rec, streak)

	if records, err := m.checkins.History(ctx, historyDays); err == nil {
		m.historyModel.SetRecords(records)
	}
	if held, err := m.checkins.Badges(ctx); err == nil {
		m.badgesModel.SetBadges(held)
	}
}

func (m *Model) recommend() {
	res, err := m.recommender.Recommend(context.Background(), models.QuestionAnswers{})
	if err != nil {
		m.suggestion.SetResult(nil, err)
		return
	}
	m.suggestion.SetResult(&res, nil)
}

func (m *Model) markDone() {
	id := m.suggestion.ContentID()
	if id == "" {
		return
	}
	if _, err := m.recommender.LogActivity(context.Background(), id, models.ActivityCompleted, ""); err != nil {
		m.errMsg = "Failed to log workout: " + err.Error()
		return
	}
	m.message = "Logged " + id + " as done."
	m.recommend()
}

func (m *Model) announce(res checkin.Result, what string) {
	m.message = what + " check-in saved."
	for _, b := range res.NewBadges {
		m.message += fmt.Sprintf(" New badge: %s (%s)!", b.Type.DisplayName(), b.Level)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Morning, m.keys.Night}
	if m.state == StateWorkout {
		keys = append(keys, m.keys.Recommend, m.keys.Done)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Morning, m.keys.Night, m.keys.Recommend, m.keys.Done}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
