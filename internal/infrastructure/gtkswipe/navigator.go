package gtkswipe

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// ErrCannotNavigate is returned when the web view has no entry in the
// requested direction.
var ErrCannotNavigate = errors.New("web view cannot navigate in that direction")

// WebViewNavigator exposes a WebKit web view's back/forward list.
type WebViewNavigator struct {
	view *webkit.WebView
}

// NewWebViewNavigator wraps view.
func NewWebViewNavigator(view *webkit.WebView) *WebViewNavigator {
	return &WebViewNavigator{view: view}
}

// CanGoBack returns true if back navigation is available.
func (n *WebViewNavigator) CanGoBack() bool {
	return n.view != nil && n.view.CanGoBack()
}

// CanGoForward returns true if forward navigation is available.
func (n *WebViewNavigator) CanGoForward() bool {
	return n.view != nil && n.view.CanGoForward()
}

// GoBack navigates back in history.
func (n *WebViewNavigator) GoBack(_ context.Context) error {
	if !n.CanGoBack() {
		return ErrCannotNavigate
	}
	n.view.GoBack()
	return nil
}

// GoForward navigates forward in history.
func (n *WebViewNavigator) GoForward(_ context.Context) error {
	if !n.CanGoForward() {
		return ErrCannotNavigate
	}
	n.view.GoForward()
	return nil
}

// URI returns the current location of the web view.
func (n *WebViewNavigator) URI() string {
	if n.view == nil {
		return ""
	}
	return n.view.URI()
}
