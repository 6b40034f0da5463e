package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/jarvis-go/internal/app"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Dispatcher.SavePrompt = NewPrompter(nil, nil)
	container.Dispatcher.Clipboard = NewClipboard()

	askCmd := newAskCommand(container)

	root := &cobra.Command{
		Use:   "jarvis [command text]",
		Short: "Jarvis - voice and text command assistant",
		Long:  "Jarvis dispatches spoken or typed commands: open apps and folders, answer questions, and control the system with confirmation-gated actions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			askCmd.SetArgs(args)
			return askCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(askCmd)
	root.AddCommand(newListenCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewCacheCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newAskCommand(container *app.Container) *cobra.Command {
	var (
		copyAnswer bool
		quiet      bool
		noCache    bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ask [command text]",
		Short: "Dispatch a typed command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			// Typed input may carry the wake phrase too; strip it the same
			// way the voice path does.
			text := container.Wakeword().Strip(strings.Join(args, " "))

			dispatcher := container.Dispatcher
			dispatcher.CopyAnswers = copyAnswer
			if quiet {
				dispatcher.Speaker = nil
			}
			if noCache && container.Resolver != nil {
				container.Resolver.Cache = nil
			}

			spinner := NewSpinner(cmd.ErrOrStderr())
			spinner.Start()
			result := dispatcher.Dispatch(ctx, text, domain.SourceTyped)
			spinner.Stop()

			RenderDispatch(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyAnswer, "copy", "c", false, "Copy resolved answers to clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress speech output")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the answer cache for this lookup")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Override dispatch timeout")

	return cmd
}

func newListenCommand(container *app.Container) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the continuous listening loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Camera != nil {
				if err := container.Camera.Start(); err != nil {
					container.Logger.Warn("camera unavailable", map[string]interface{}{"error": err.Error()})
				} else {
					defer container.Camera.Stop()
				}
			}
			if once {
				container.Listener.RunOnce(cmd.Context())
				return nil
			}
			container.Listener.Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Capture and dispatch a single utterance, then exit")
	return cmd
}
