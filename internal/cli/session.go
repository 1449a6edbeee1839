package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	core "precisecalc/internal/calculator"
	"precisecalc/internal/domain"
	"precisecalc/internal/history"
)

// ErrQuit - команда exit: цикл REPL завершается.
var ErrQuit = errors.New("quit")

// Session - состояние REPL: общая история и текущий экземпляр калькулятора.
// Команда new заменяет экземпляр новым на той же общей истории.
type Session struct {
	calc     *core.Calculator
	out      io.Writer
	log      *slog.Logger
	instance int
}

// NewSession создаёт сессию с новой общей историей.
func NewSession(precision int, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		calc:     core.NewWithPrecision(history.NewShared(), precision),
		out:      out,
		log:      log,
		instance: 1,
	}
}

// Instance - номер текущего экземпляра (растёт с каждой командой new).
func (s *Session) Instance() int {
	return s.instance
}

// Exec выполняет одну строку REPL. Ошибки калькулятора возвращаются как есть,
// ErrQuit - сигнал выхода.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "exit", "quit":
		return ErrQuit
	case "help":
		printHelp(s.out)
		return nil
	case "new":
		s.calc = s.calc.CreateInstance()
		s.instance++
		s.log.Debug("new instance", "instance", s.instance)
		return s.println(fmt.Sprintf("instance #%d", s.instance))
	case "last":
		return s.last(args)
	case "reset":
		return s.reset(args)
	case "history":
		return s.history(args)
	}

	op, err := domain.ParseOperator(cmd)
	if err != nil {
		return fmt.Errorf("unknown command %q (help - список команд)", cmd)
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <a> <b>", cmd)
	}
	a, err := domain.ParseDecimal(args[0])
	if err != nil {
		return err
	}
	b, err := domain.ParseDecimal(args[1])
	if err != nil {
		return err
	}
	result, err := s.calc.Apply(op, a, b)
	if err != nil {
		return err
	}
	s.log.Debug("calculated", "instance", s.instance, "operation", op, "result", result.String())
	return s.println(result.String())
}

func (s *Session) last(args []string) error {
	var (
		e   domain.Entry
		err error
	)
	if shared(args) {
		e, err = s.calc.LastSharedCalculation()
	} else {
		e, err = s.calc.LastInstanceCalculation()
	}
	if err != nil {
		return err
	}
	return s.println(e.String())
}

func (s *Session) reset(args []string) error {
	if shared(args) {
		s.calc.ResetSharedHistory()
		return s.println("shared history cleared")
	}
	s.calc.ResetInstanceHistory()
	return s.println("instance history cleared")
}

func (s *Session) history(args []string) error {
	if shared(args) {
		renderHistory(s.out, "shared", s.calc.SharedHistory().Entries())
		return nil
	}
	renderHistory(s.out, fmt.Sprintf("instance #%d", s.instance), s.calc.InstanceHistory())
	return nil
}

func (s *Session) println(v string) error {
	_, err := fmt.Fprintln(s.out, v)
	return err
}

func shared(args []string) bool {
	return len(args) > 0 && strings.EqualFold(args[0], "shared")
}

func printHelp(w io.Writer) {
	help := `
Commands:
  add|sub|mul|div <a> <b>   Calculate (also + - * / and full names)
  last [shared]             Last calculation of this instance (or shared)
  reset [shared]            Clear instance (or shared) history
  history [shared]          Show instance (or shared) history
  new                       Switch to a new instance on the same shared history
  help                      Show this help message
  exit                      Exit the REPL
`
	_, _ = fmt.Fprintln(w, help)
}
