package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imgautam07/share-in-web/internal/service"
	"github.com/imgautam07/share-in-web/internal/utils"
	"github.com/imgautam07/share-in-web/models"
)

type dashMode int

const (
	modeList dashMode = iota
	modeSearch
	modeUpload
	modeShare
	modeRedeem
)

type uploadStage int

const (
	uploadStagePath uploadStage = iota
	uploadStageName
)

type mainLoopModel struct {
	ctx        context.Context
	services   *service.ClientServices
	identity   models.Identity
	webBaseURL string

	mode    dashMode
	items   []models.FileRecord
	idx     int
	catIdx  int
	loading bool
	status  string
	errMsg  string

	confirmDelete bool

	searchInput   textinput.Model
	search        *service.SearchWorkflow
	searchCh      chan searchResultsMsg
	searchResults []models.FileRecord
	searchCatIdx  int

	uploadStage  uploadStage
	uploadInput  textinput.Model
	uploadDraft  models.UploadDraft
	uploadSaving bool

	shareInput   textinput.Model
	shareFileID  string
	shareName    string
	shareSending bool

	redeemInput textinput.Model
	redeeming   bool

	logout bool
}

type filesLoadedMsg struct {
	files []models.FileRecord
	err   error
}

type fileDeletedMsg struct {
	err error
}

type sharedMsg struct {
	err error
}

type uploadedMsg struct {
	err error
}

type searchResultsMsg struct {
	files []models.FileRecord
	err   error
}

type redeemDoneMsg struct {
	record models.FileRecord
	path   string
	err    error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, identity models.Identity, webBaseURL string) mainLoopModel {
	searchCh := make(chan searchResultsMsg, 8)
	search := service.NewSearchWorkflow(services.Files, 0, func(files []models.FileRecord, err error) {
		searchCh <- searchResultsMsg{files: files, err: err}
	}, nil)

	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		identity:   identity,
		webBaseURL: webBaseURL,
		loading:    true,
		search:     search,
		searchCh:   searchCh,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadFiles(), m.cmdWaitForSearch())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.files
		m.clampIdx()
		return m, nil
	case fileDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "File deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadFiles()
	case sharedMsg:
		m.shareSending = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Share email sent"
		m.errMsg = ""
		return m, nil
	case uploadedMsg:
		m.uploadSaving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "File uploaded"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadFiles()
	case searchResultsMsg:
		// Always re-arm the waiter so the next result is picked up too.
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, m.cmdWaitForSearch()
		}
		m.errMsg = ""
		m.searchResults = msg.files
		return m, m.cmdWaitForSearch()
	case redeemDoneMsg:
		m.redeeming = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = fmt.Sprintf("Saved %q to %s", msg.record.Name, msg.path)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadFiles()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateMode(msg)
	}

	if key.Matches(keyMsg, keys.quit) && m.mode == modeList && !m.confirmDelete {
		return m, tea.Quit
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	return m.updateMode(msg)
}

func (m mainLoopModel) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeUpload:
		return m.updateUpload(msg)
	case modeShare:
		return m.updateShare(msg)
	case modeRedeem:
		return m.updateRedeem(msg)
	default:
		return m.updateList(msg)
	}
}

// ── List mode ────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmDelete = false
			file, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(file.ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.catIdx > 0 {
			m.catIdx--
			m.idx = 0
		}
	case key.Matches(keyMsg, keys.right):
		if m.catIdx < len(models.Categories())-1 {
			m.catIdx++
			m.idx = 0
		}
	case key.Matches(keyMsg, keys.search):
		m.enterSearch()
		m.search.Reset()
		m.search.Activate(m.ctx)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.upload):
		m.enterUpload()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.share):
		file, ok := m.current()
		if !ok {
			m.status = "No files"
			return m, nil
		}
		m.enterShare(file)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copyLink):
		file, ok := m.current()
		if !ok {
			m.status = "No files"
			return m, nil
		}
		link := m.shareLink(file.ID)
		if err := clipboard.WriteAll(link); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Share link copied"
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = "No files"
			return m, nil
		}
		m.confirmDelete = true
	case key.Matches(keyMsg, keys.enter):
		file, ok := m.current()
		if !ok {
			m.status = "No files"
			return m, nil
		}
		// Download reuses the redemption path; the access grant is
		// idempotent for files the user already owns.
		m.status = "Downloading " + file.Name + "..."
		return m, m.cmdRedeem(file.ID)
	case key.Matches(keyMsg, keys.redeem):
		m.enterRedeem()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// visible returns the files matching the active category tab. The filter is
// purely local; the full list stays untouched.
func (m mainLoopModel) visible() []models.FileRecord {
	category := models.Categories()[m.catIdx]
	if category == models.CategoryAll {
		return m.items
	}

	var out []models.FileRecord
	for _, f := range m.items {
		if string(f.Type) == category {
			out = append(out, f)
		}
	}
	return out
}

func (m mainLoopModel) current() (models.FileRecord, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.FileRecord{}, false
	}
	return visible[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) shareLink(fileID string) string {
	return strings.TrimRight(m.webBaseURL, "/") + "/file/" + fileID
}

// ── Search mode ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) enterSearch() {
	input := textinput.New()
	input.Placeholder = "search files"
	input.Width = 40
	input.Focus()

	m.searchInput = input
	m.searchResults = nil
	m.searchCatIdx = 0
	m.mode = modeSearch
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.search.Stop()
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.searchCatIdx > 0 {
				m.searchCatIdx--
				m.search.SetCategory(m.ctx, models.Categories()[m.searchCatIdx])
			}
			return m, nil
		case key.Matches(keyMsg, keys.right):
			if m.searchCatIdx < len(models.Categories())-1 {
				m.searchCatIdx++
				m.search.SetCategory(m.ctx, models.Categories()[m.searchCatIdx])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.search.SetText(m.ctx, after)
	}
	return m, cmd
}

// ── Upload mode ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) enterUpload() {
	input := textinput.New()
	input.Placeholder = "/path/to/file"
	input.Width = 54
	input.Focus()

	m.uploadInput = input
	m.uploadStage = uploadStagePath
	m.uploadDraft = models.UploadDraft{}
	m.uploadSaving = false
	m.mode = modeUpload
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.uploadSaving {
				return m, nil
			}

			if m.uploadStage == uploadStagePath {
				draft, err := m.services.Upload.Prepare(strings.TrimSpace(m.uploadInput.Value()))
				if err != nil {
					m.errMsg = humanizeError(err)
					return m, nil
				}

				name := textinput.New()
				name.Placeholder = "file name"
				name.Width = 40
				name.SetValue(draft.DisplayName)
				name.Focus()

				m.uploadDraft = draft
				m.uploadInput = name
				m.uploadStage = uploadStageName
				m.errMsg = ""
				return m, nil
			}

			m.uploadDraft.DisplayName = strings.TrimSpace(m.uploadInput.Value())
			m.errMsg = ""
			m.uploadSaving = true
			return m, m.cmdUpload(m.uploadDraft)
		}
	}

	var cmd tea.Cmd
	m.uploadInput, cmd = m.uploadInput.Update(msg)
	return m, cmd
}

// ── Share mode ───────────────────────────────────────────────────────────────

func (m *mainLoopModel) enterShare(file models.FileRecord) {
	input := textinput.New()
	input.Placeholder = "recipient email"
	input.CharLimit = 254
	input.Width = 40
	input.Focus()

	m.shareInput = input
	m.shareFileID = file.ID
	m.shareName = file.Name
	m.shareSending = false
	m.mode = modeShare
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.shareSending {
				return m, nil
			}

			email := strings.TrimSpace(m.shareInput.Value())
			if email == "" {
				m.errMsg = "Email is required"
				return m, nil
			}

			m.errMsg = ""
			m.shareSending = true
			return m, m.cmdShare(m.shareFileID, email)
		}
	}

	var cmd tea.Cmd
	m.shareInput, cmd = m.shareInput.Update(msg)
	return m, cmd
}

// ── Redeem mode ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) enterRedeem() {
	input := textinput.New()
	input.Placeholder = "share link or file id"
	input.Width = 54
	input.Focus()

	m.redeemInput = input
	m.redeeming = false
	m.mode = modeRedeem
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateRedeem(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.redeeming {
				return m, nil
			}

			fileID := redeemFileID(m.redeemInput.Value())
			if fileID == "" {
				m.errMsg = "Paste a share link or file id"
				return m, nil
			}

			m.errMsg = ""
			m.redeeming = true
			return m, m.cmdRedeem(fileID)
		}
	}

	var cmd tea.Cmd
	m.redeemInput, cmd = m.redeemInput.Update(msg)
	return m, cmd
}

// redeemFileID extracts the file id from a pasted share link. A bare id
// passes through unchanged.
func redeemFileID(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// ── Views ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeSearch:
		return m.viewSearch()
	case modeUpload:
		return m.viewUpload()
	case modeShare:
		return m.viewShare()
	case modeRedeem:
		return m.viewRedeem()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	if m.confirmDelete {
		if file, ok := m.current(); ok {
			return confirmModel{message: file.Name}.View()
		}
	}

	var b strings.Builder
	b.WriteString("Hello, ")
	b.WriteString(m.identity.DisplayName())
	b.WriteString("!\n\n")

	b.WriteString(renderCategoryTabs(m.catIdx))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading files...\n")
	case len(m.visible()) == 0:
		b.WriteString("No files here yet\n")
	default:
		b.WriteString(renderFileTable(m.visible(), m.idx))
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("YOUR FILES", strings.TrimRight(b.String(), "\n"),
		"↑/↓: navigate │ ←/→: category │ enter: download │ /: search │ u: upload │ s: share │ c: copy link │ d: delete │ r: redeem link │ l: logout │ q: quit")
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder
	b.WriteString("Search    │ [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n\n")

	b.WriteString(renderCategoryTabs(m.searchCatIdx))
	b.WriteString("\n\n")

	if len(m.searchResults) == 0 {
		b.WriteString("No matches\n")
	} else {
		b.WriteString(renderFileTable(m.searchResults, -1))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SEARCH", strings.TrimRight(b.String(), "\n"), "←/→: category │ esc: back")
}

func (m mainLoopModel) viewUpload() string {
	var b strings.Builder

	if m.uploadStage == uploadStagePath {
		b.WriteString("Path      │ [")
		b.WriteString(m.uploadInput.View())
		b.WriteString("]\n")
	} else {
		b.WriteString("File      │ ")
		b.WriteString(m.uploadDraft.OriginalName)
		b.WriteString(" (")
		b.WriteString(utils.FormatFileSize(m.uploadDraft.Size))
		b.WriteString(")\n")
		b.WriteString("Name      │ [")
		b.WriteString(m.uploadInput.View())
		b.WriteString("]\n")
	}

	if m.uploadSaving {
		b.WriteString("\nUploading...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("UPLOAD", strings.TrimRight(b.String(), "\n"), "enter: next │ esc: cancel")
}

func (m mainLoopModel) viewShare() string {
	var b strings.Builder
	b.WriteString("File      │ ")
	b.WriteString(m.shareName)
	b.WriteString("\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.shareInput.View())
	b.WriteString("]\n")

	if m.shareSending {
		b.WriteString("\nSending...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SHARE VIA EMAIL", strings.TrimRight(b.String(), "\n"), "enter: send │ esc: cancel")
}

func (m mainLoopModel) viewRedeem() string {
	var b strings.Builder
	b.WriteString("Link      │ [")
	b.WriteString(m.redeemInput.View())
	b.WriteString("]\n")

	if m.redeeming {
		b.WriteString("\nDownloading...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("REDEEM SHARED FILE", strings.TrimRight(b.String(), "\n"), "enter: download │ esc: cancel")
}

func renderCategoryTabs(active int) string {
	parts := make([]string, 0, len(models.Categories()))
	for i, category := range models.Categories() {
		if i == active {
			parts = append(parts, "["+category+"]")
		} else {
			parts = append(parts, " "+category+" ")
		}
	}
	return strings.Join(parts, " ")
}

func renderFileTable(files []models.FileRecord, selected int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-30s │ %-6s │ %-10s │ %s\n", "Name", "Type", "Size", "Created"))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", 66))
	b.WriteString("\n")

	for i, f := range files {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-30s │ %-6s │ %-10s │ %s\n",
			cursor,
			fitText(f.Name, 30),
			f.Type,
			utils.FormatFileSize(f.Size),
			utils.FormatDate(f.CreatedAt),
		))
	}

	return b.String()
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadFiles() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Files

	return func() tea.Msg {
		files, err := svc.List(ctx)
		return filesLoadedMsg{files: files, err: err}
	}
}

func (m mainLoopModel) cmdDelete(fileID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Files

	return func() tea.Msg {
		err := svc.Delete(ctx, fileID)
		return fileDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdShare(fileID, email string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Files

	return func() tea.Msg {
		err := svc.ShareViaEmail(ctx, fileID, email)
		return sharedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpload(draft models.UploadDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Upload

	return func() tea.Msg {
		err := svc.Submit(ctx, draft)
		return uploadedMsg{err: err}
	}
}

func (m mainLoopModel) cmdRedeem(fileID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Redeem

	return func() tea.Msg {
		record, path, err := svc.Redeem(ctx, fileID)
		return redeemDoneMsg{record: record, path: path, err: err}
	}
}

func (m mainLoopModel) cmdWaitForSearch() tea.Cmd {
	ch := m.searchCh

	return func() tea.Msg {
		return <-ch
	}
}
