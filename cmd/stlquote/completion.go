package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for stlquote.

To load completions:

Bash:

  $ source <(stlquote completion bash)

  To load completions for each session, execute once:
  Linux:
    $ stlquote completion bash > /etc/bash_completion.d/stlquote
  macOS:
    $ stlquote completion bash > /usr/local/etc/bash_completion.d/stlquote

Zsh:

  If shell completion is not already enabled in your environment,
  you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
  $ stlquote completion zsh > "${fpath[1]}/_stlquote"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ stlquote completion fish | source

  To load completions for each session, execute once:
  $ stlquote completion fish > ~/.config/fish/completions/stlquote.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
