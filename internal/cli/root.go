// Package cli 实现 blogctl 命令行
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"blog-idea-api/internal/client"
	"blog-idea-api/internal/tui"
)

// App 命令行全局参数
type App struct {
	Server  string
	Timeout time.Duration
	JSON    bool

	// runTUI 启动终端界面，测试中替换
	runTUI func(tui.Model) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "blogctl",
		Short:        "Blog idea generator CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  blogctl

  # Scriptable commands
  blogctl ideas "remote work"
  blogctl outline "The Async Manifesto"
  blogctl share --topic "remote work" --idea "The Async Manifesto" --selected "The Async Manifesto"
  blogctl shared 0k3j5x9q2m1ab
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return app.runTUI(tui.NewModel(app.client()))
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("BLOGCTL_SERVER", "http://localhost:8080"), "Blog idea service base URL")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 90*time.Second, "Request timeout")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Print JSON output")

	cmd.AddCommand(newIdeasCmd(app))
	cmd.AddCommand(newOutlineCmd(app))
	cmd.AddCommand(newShareCmd(app))
	cmd.AddCommand(newSharedCmd(app))

	return cmd
}

func (a *App) client() *client.Client {
	return client.New(a.Server, &http.Client{Timeout: a.Timeout})
}

func (a *App) printLines(w io.Writer, key string, lines []string) error {
	if a.JSON {
		return writeJSON(w, map[string][]string{key: lines})
	}
	for i, line := range lines {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
