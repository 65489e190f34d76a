//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-shell/console"
)

// Invoke runs a lifecycle hook in production mode.
// Panics are recovered and logged so that a faulty hook never blocks navigation.
func Invoke(hook, key string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("ERROR: %s panic in page %s: %v", hook, key, rec))
		}
	}()
	fn()
}
