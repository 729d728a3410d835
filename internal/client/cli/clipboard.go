package cli

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("clipboard is not available on this system")

// systemClipboard writes through xclip/xsel/wl-clipboard, pbcopy or the
// Windows API, whichever the platform has.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}
