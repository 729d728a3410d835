package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// terminalNotifier prints notifications to w. With dismiss set it waits
// for Enter before returning, like a modal alert.
type terminalNotifier struct {
	w       io.Writer
	dismiss *bufio.Reader
}

func (n *terminalNotifier) Notify(ctx context.Context, message string) {
	fmt.Fprintf(n.w, "\n  ! %s\n", message)
	if n.dismiss == nil {
		return
	}

	fmt.Fprint(n.w, "  [Enter]")
	_, _ = n.dismiss.ReadString('\n')
}
