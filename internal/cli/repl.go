package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Интерактивный режим: экземпляры калькулятора на общей истории",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "calc> ",
				AutoComplete:    newCompleter(),
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = rl.Close() }()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "precisecalc REPL. Type help for commands, exit to quit")
			s := NewSession(opts.precision, cmd.OutOrStdout(), opts.log(cmd))
			return Loop(rl, s, cmd.ErrOrStderr())
		},
	}
}

// LineReader - источник строк для REPL (readline.Instance или заглушка в тестах).
type LineReader interface {
	Readline() (string, error)
}

// Loop читает строки до exit или EOF. Ошибка команды печатается в errOut, цикл продолжается.
func Loop(r LineReader, s *Session, errOut io.Writer) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := s.Exec(line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			_, _ = fmt.Fprintln(errOut, err.Error())
		}
	}
}

func newCompleter() *readline.PrefixCompleter {
	shared := readline.PcItem("shared")
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("sub"),
		readline.PcItem("mul"),
		readline.PcItem("div"),
		readline.PcItem("last", shared),
		readline.PcItem("reset", shared),
		readline.PcItem("history", shared),
		readline.PcItem("new"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
