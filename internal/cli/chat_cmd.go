package cli

import "github.com/spf13/cobra"

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a console chat session (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app)
		},
	}
}

func runChat(cmd *cobra.Command, app *App) error {
	s := newChatSession(app, cmd.InOrStdin(), cmd.OutOrStdout())
	return s.Run(cmd.Context())
}
