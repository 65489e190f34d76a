package router

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by navigations.
var (
	// ErrNoRoute indicates that no registered pattern matches the URL path.
	ErrNoRoute = errors.New("no route matches")

	// ErrNotTabBar indicates a SwitchTab to a page that is not in the tab bar.
	ErrNotTabBar = errors.New("not a tab-bar page")

	// ErrTabBarPage indicates a NavigateTo or RedirectTo to a tab-bar page.
	// Tab-bar pages are opened with SwitchTab.
	ErrTabBarPage = errors.New("tab-bar page must be opened with SwitchTab")

	// ErrEmptyStack indicates a NavigateBack from the first page.
	ErrEmptyStack = errors.New("no page to go back to")
)

// NavigationError records the navigation that failed and the URL it targeted.
type NavigationError struct {
	Op  string // navigateTo, redirectTo, navigateBack, switchTab or reLaunch
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("router: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

func navErr(op, url string, err error) error {
	return &NavigationError{Op: op, URL: url, Err: err}
}
