//go:build !dev && !wasm

package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoke_RecoversPanics(t *testing.T) {
	ran := false

	assert.NotPanics(t, func() {
		Invoke("OnUnload", "/pages/a$$1", func() { panic("boom") })
	})
	Invoke("OnShow", "/pages/a$$1", func() { ran = true })

	assert.True(t, ran)
}
