// Package cli - командная строка калькулятора: разовые команды и интерактивный REPL.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	core "precisecalc/internal/calculator"
	"precisecalc/internal/domain"
	"precisecalc/internal/history"
	"precisecalc/internal/pkg/logger"
)

// Version - версия CLI (подставляется при сборке).
var Version = "0.1.0"

type options struct {
	precision int
	logLevel  string
}

// NewRootCmd создаёт корневую команду calc.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "calc",
		Short:         "Калькулятор десятичных чисел произвольной точности",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&opts.precision, "precision", core.DefaultPrecision, "значащих цифр при делении (не меньше 28)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "уровень логов: debug, info, warn, error")

	for _, op := range []struct {
		use   string
		short string
		op    domain.Operator
	}{
		{use: "add", short: "Сложить: a + b", op: domain.OpAdd},
		{use: "subtract", short: "Вычесть: a - b", op: domain.OpSub},
		{use: "multiply", short: "Умножить: a * b", op: domain.OpMul},
		{use: "divide", short: "Разделить: a / b", op: domain.OpDiv},
	} {
		root.AddCommand(newOperationCmd(opts, op.use, op.short, op.op))
	}
	root.AddCommand(newREPLCmd(opts))
	return root
}

func newOperationCmd(opts *options, use, short string, op domain.Operator) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.ParseDecimal(args[0])
			if err != nil {
				return err
			}
			b, err := domain.ParseDecimal(args[1])
			if err != nil {
				return err
			}
			calc := core.NewWithPrecision(history.NewShared(), opts.precision)
			result, err := calc.Apply(op, a, b)
			if err != nil {
				return err
			}
			opts.log(cmd).Debug("calculated", "operation", op, "result", result.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return err
		},
	}
}

func (o *options) log(cmd *cobra.Command) *slog.Logger {
	return logger.NewWithWriter(o.logLevel, cmd.ErrOrStderr())
}
