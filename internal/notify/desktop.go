package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

var ErrUnsupported = errors.New("notify: system notifications unsupported")

// SystemNotifier raises a notification on the platform's own surface.
// A returned error means "not shown" and is never fatal.
type SystemNotifier interface {
	Notify(title, body string, urgent bool, closeAfter time.Duration) error
}

type NoopSystemNotifier struct{}

func (NoopSystemNotifier) Notify(string, string, bool, time.Duration) error {
	return ErrUnsupported
}

// ExecSystemNotifier shells out to the platform notification tool.
type ExecSystemNotifier struct{}

func (ExecSystemNotifier) Notify(title, body string, urgent bool, closeAfter time.Duration) error {
	switch runtime.GOOS {
	case "linux":
		args := []string{"-t", strconv.Itoa(int(closeAfter.Milliseconds()))}
		if urgent {
			args = append(args, "-u", "critical")
		}
		args = append(args, title, body)
		return exec.Command("notify-send", args...).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return ErrUnsupported
	}
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
