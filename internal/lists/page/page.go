// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package page models the lists screen: the user's saved lists, a search
// box, per-row open and delete actions, and two overlays (help modal and
// delete confirmation).
//
// # Architecture
//
// The page owns presentation state only. Data access goes through the narrow
// [Repository] capability, navigation through [Navigator], and blocking
// user notifications through [Notifier]. Session identity is passed into
// every operation that touches the store.
package page

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/internal/platform/constants"
	"github.com/taibuivan/shopventory/pkg/slice"
)

// # Collaborators

// Repository is the subset of the list store the page uses.
type Repository interface {
	FetchAll(ctx context.Context, session lists.Session) ([]lists.List, error)
	Delete(ctx context.Context, session lists.Session, id string) error
}

// Navigator moves the client between screens.
type Navigator interface {
	Navigate(path string)
	Back()
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(message string)
}

// # Messages

const (
	MessageNotLoggedIn = "User not logged in!"
	MessageDeleted     = "List deleted successfully!"
)

// Phase tracks the single fetch performed per activation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseLoaded
	PhaseFailed
)

func (phase Phase) String() string {
	switch phase {
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Row is one render-ready entry of the visible list.
type Row struct {
	ID   string
	Name string
	Type lists.Type
	Icon string
}

// Page holds the state of one lists screen instance.
type Page struct {
	repository Repository
	navigator  Navigator
	notifier   Notifier
	logger     *slog.Logger

	mu            sync.Mutex
	phase         Phase
	all           []lists.List
	searchTerm    string
	infoVisible   bool
	alertVisible  bool
	pendingDelete string
}

// New creates an idle page. Nothing is fetched until [Page.Activate].
func New(repository Repository, navigator Navigator, notifier Notifier, logger *slog.Logger) *Page {
	return &Page{
		repository: repository,
		navigator:  navigator,
		notifier:   notifier,
		logger:     logger,
	}
}

// # Lifecycle

/*
Activate loads the session's lists into the page.

Without a session the user is told they are not logged in and nothing is
fetched. Only the first activation with a session fetches; later calls are
no-ops. A failed fetch is logged and leaves the current lists in place.
*/
func (page *Page) Activate(ctx context.Context, session lists.Session) {
	if !session.Valid() {
		page.notifier.Alert(MessageNotLoggedIn)
		return
	}

	page.mu.Lock()
	if page.phase != PhaseIdle {
		page.mu.Unlock()
		return
	}
	page.phase = PhaseFetching
	page.mu.Unlock()

	fetched, err := page.repository.FetchAll(ctx, session)

	page.mu.Lock()
	defer page.mu.Unlock()

	if err != nil {
		page.phase = PhaseFailed
		page.logger.ErrorContext(ctx, "lists_fetch_failed",
			slog.String("user_id", session.UserID),
			slog.Any("error", err),
		)
		return
	}

	page.all = fetched
	page.phase = PhaseLoaded
}

// Phase reports where the page is in its fetch lifecycle.
func (page *Page) Phase() Phase {
	page.mu.Lock()
	defer page.mu.Unlock()
	return page.phase
}

// # Search

// SetSearchTerm replaces the search box contents.
func (page *Page) SetSearchTerm(term string) {
	page.mu.Lock()
	defer page.mu.Unlock()
	page.searchTerm = term
}

// SearchTerm returns the current search box contents.
func (page *Page) SearchTerm() string {
	page.mu.Lock()
	defer page.mu.Unlock()
	return page.searchTerm
}

// All returns every loaded list, unfiltered.
func (page *Page) All() []lists.List {
	page.mu.Lock()
	defer page.mu.Unlock()
	return append([]lists.List(nil), page.all...)
}

// Visible returns the loaded lists matching the search term.
func (page *Page) Visible() []lists.List {
	page.mu.Lock()
	defer page.mu.Unlock()
	return lists.Filter(page.all, page.searchTerm)
}

// Rows returns the visible lists as render rows.
func (page *Page) Rows() []Row {
	return slice.Map(page.Visible(), func(list lists.List) Row {
		return Row{ID: list.ID, Name: list.Name, Type: list.Type, Icon: list.Type.Icon()}
	})
}

// # Navigation

// Open navigates to the detail screen of a list. Unknown types go nowhere.
func (page *Page) Open(id string, listType lists.Type) {
	if path, ok := lists.Route(id, listType); ok {
		page.navigator.Navigate(path)
	}
}

// Back returns to the previous screen.
func (page *Page) Back() {
	page.navigator.Back()
}

// GoHome navigates to the main screen.
func (page *Page) GoHome() {
	page.navigator.Navigate(constants.RouteMainPage)
}

// CreateNew navigates to the list creation screen.
func (page *Page) CreateNew() {
	page.navigator.Navigate(constants.RouteNewListPage)
}

// # Info Modal

// ShowInfo opens the help modal.
func (page *Page) ShowInfo() {
	page.mu.Lock()
	defer page.mu.Unlock()
	page.infoVisible = true
}

// DismissInfo closes the help modal.
func (page *Page) DismissInfo() {
	page.mu.Lock()
	defer page.mu.Unlock()
	page.infoVisible = false
}

// InfoVisible reports whether the help modal is open.
func (page *Page) InfoVisible() bool {
	page.mu.Lock()
	defer page.mu.Unlock()
	return page.infoVisible
}

// Help returns the content of the help modal.
func (page *Page) Help() lists.HelpContent {
	return lists.Help()
}

// # Delete Flow

// RequestDelete remembers which list the user wants gone and asks for confirmation.
func (page *Page) RequestDelete(id string) {
	page.mu.Lock()
	defer page.mu.Unlock()
	page.pendingDelete = id
	page.alertVisible = true
}

// CancelDelete dismisses the confirmation and forgets the selection.
func (page *Page) CancelDelete() {
	page.mu.Lock()
	defer page.mu.Unlock()
	page.pendingDelete = ""
	page.alertVisible = false
}

// AlertVisible reports whether the delete confirmation is open.
func (page *Page) AlertVisible() bool {
	page.mu.Lock()
	defer page.mu.Unlock()
	return page.alertVisible
}

// PendingDelete returns the id awaiting confirmation, or "".
func (page *Page) PendingDelete() string {
	page.mu.Lock()
	defer page.mu.Unlock()
	return page.pendingDelete
}

// ConfirmDelete dismisses the confirmation and deletes the selected list.
func (page *Page) ConfirmDelete(ctx context.Context, session lists.Session) {
	page.mu.Lock()
	page.alertVisible = false
	id := page.pendingDelete
	page.pendingDelete = ""
	page.mu.Unlock()

	if id == "" {
		return
	}
	page.Delete(ctx, session, id)
}

/*
Delete removes a list from the store and then from the page.

The local entry is dropped only after the store confirms the delete. On
failure the error is logged and the page is left as it was.
*/
func (page *Page) Delete(ctx context.Context, session lists.Session, id string) {
	if !session.Valid() {
		page.notifier.Alert(MessageNotLoggedIn)
		return
	}

	if err := page.repository.Delete(ctx, session, id); err != nil {
		page.logger.ErrorContext(ctx, "list_delete_failed",
			slog.String("user_id", session.UserID),
			slog.String("list_id", id),
			slog.Any("error", err),
		)
		return
	}

	page.mu.Lock()
	page.all = slice.Without(page.all, func(list lists.List) bool { return list.ID == id })
	page.mu.Unlock()

	page.notifier.Alert(MessageDeleted)
}
