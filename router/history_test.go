package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/nojs-shell/page"
)

func TestStepFor(t *testing.T) {
	tests := []struct {
		name     string
		change   Change
		popState bool
		want     historyStep
	}{
		{"navigate to pushes", Change{Type: page.NavigateTo}, false, historyStep{method: "pushState"}},
		{"redirect replaces", Change{Type: page.RedirectTo}, false, historyStep{method: "replaceState"}},
		{"relaunch replaces", Change{Type: page.ReLaunch}, false, historyStep{method: "replaceState"}},
		{"back moves by every closed page", Change{Type: page.NavigateBack, Delta: 2}, false, historyStep{method: "go", delta: -2}},
		{"back from popstate leaves history alone", Change{Type: page.NavigateBack, Delta: 1}, true, historyStep{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepFor(tt.change, tt.popState))
		})
	}
}

// TestStepFor_BackMatchesNavigator checks the history step produced by a real
// multi-page back navigation.
func TestStepFor_BackMatchesNavigator(t *testing.T) {
	h := newHarness(t)
	var last Change
	h.nav.onChange = func(c Change) { last = c }
	assert.NoError(t, h.nav.Start("/pages/home", 0))
	assert.NoError(t, h.nav.NavigateTo("/pages/list"))
	assert.NoError(t, h.nav.NavigateTo("/pages/detail/1"))

	assert.NoError(t, h.nav.NavigateBack(2))

	assert.Equal(t, historyStep{method: "go", delta: -2}, stepFor(last, false))
	assert.Equal(t, 1, last.Page.ID)
}
