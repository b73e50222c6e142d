package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/service"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	listWidth   = 36
	statusDelay = 2 * time.Second
)

type model struct {
	ctx   context.Context
	users service.UserService
	ids   []int64
	info  models.AppBuildInfo

	spinner     spinner.Model
	items       []models.User
	idx         int
	loading     bool
	showInfo    bool
	status      string
	errMsg      string
	lastRefresh time.Time

	copy func(string) error
}

func newModel(ctx context.Context, users service.UserService, ids []int64, info models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		ctx:     ctx,
		users:   users,
		ids:     ids,
		info:    info,
		spinner: s,
		loading: true,
		copy:    func(string) error { return nil },
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadUsers())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		m.apply(msg.users, msg.err)
		return m, nil
	case refreshMsg:
		m.lastRefresh = msg.result.At
		m.apply(msg.result.Users, msg.result.Err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadUsers())
	case key.Matches(msg, keys.copy):
		u, ok := m.current()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		data, err := json.MarshalIndent(u, "", "  ")
		if err == nil {
			err = m.copy(string(data))
		}
		if err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано!"
		return m, clearStatusAfter(statusDelay)
	}
	return m, nil
}

// apply keeps the previous list on error so a failed refresh does not blank
// the screen.
func (m *model) apply(users []models.User, err error) {
	if err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.errMsg = ""
	m.items = users
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m model) current() (models.User, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.User{}, false
	}
	return m.items[m.idx], true
}

func (m model) cmdLoadUsers() tea.Cmd {
	ctx, users, ids := m.ctx, m.users, m.ids
	return func() tea.Msg {
		loaded, err := users.LoadUsers(ctx, ids)
		return usersLoadedMsg{users: loaded, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m model) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var body string
	switch {
	case m.loading && len(m.items) == 0:
		body = m.spinner.View() + " Загрузка пользователей..."
	case len(m.items) == 0:
		body = "Нет пользователей"
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.detailView())
	}

	var footer []string
	if m.loading && len(m.items) > 0 {
		footer = append(footer, m.spinner.View()+" Обновление...")
	}
	if !m.lastRefresh.IsZero() {
		footer = append(footer, "Обновлено: "+m.lastRefresh.Format(time.TimeOnly))
	}
	if m.status != "" {
		footer = append(footer, m.status)
	}
	if m.errMsg != "" {
		footer = append(footer, errorStyle.Render("Ошибка: "+m.errMsg))
	}
	footer = append(footer, "Версия: "+valueOrNA(m.info.BuildVersion()))

	data := body + "\n\n" + strings.Join(footer, "\n")
	return appStyle.Render(renderPage("ПОЛЬЗОВАТЕЛИ", data, "↑/↓: выбор  r: обновить  c: копировать JSON  i: о программе  q: выход"))
}

func (m model) listView() string {
	var b strings.Builder
	for i, u := range m.items {
		line := fitText(u.Title(), listWidth)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) detailView() string {
	u, ok := m.current()
	if !ok {
		return ""
	}

	rows := []string{
		"ID:       " + fmt.Sprint(u.ID),
		"Имя:      " + valueOrDash(u.Name),
		"Логин:    " + valueOrDash(u.Username),
		"Email:    " + valueOrDash(u.Email),
		"Телефон:  " + valueOrDash(u.Phone),
		"Сайт:     " + valueOrDash(u.Website),
		"Город:    " + valueOrDash(u.Address.City),
		"Компания: " + valueOrDash(u.Company.Name),
	}
	return detailStyle.Render(strings.Join(rows, "\n"))
}
