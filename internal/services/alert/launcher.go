package alert

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// SystemLauncher opens URIs with the operating system's default handler.
type SystemLauncher struct{}

// Launch starts the platform opener for uri and waits for it to exit.
func (SystemLauncher) Launch(ctx context.Context, uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", uri)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", uri)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", cmd.Path, err, out)
	}
	return nil
}
