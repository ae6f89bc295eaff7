// Command sexpr parses infix expressions, prints their reverse Polish form,
// and runs that form on the rpn stack machine.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/kmoller/sexpr"
	"github.com/kmoller/sexpr/rpn"
)

const version = "0.2.0"

// CLI is the command-line surface.
var CLI struct {
	Config  string     `help:"Configuration file path" default:"~/.sexpr.yaml"`
	NoColor bool       `help:"Disable colored output"`
	Repl    ReplCmd    `cmd:"" default:"1" help:"Start the interactive loop"`
	Eval    EvalCmd    `cmd:"" help:"Parse and run each argument as one expression"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

func main() {
	ctx := kong.Parse(&CLI)
	cfg, err := LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sexpr: %v\n", err)
		os.Exit(1)
	}
	if CLI.NoColor || cfg.NoColor {
		color.NoColor = true
	}
	if err := ctx.Run(cfg); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (cmd *VersionCmd) Run(*Config) error {
	fmt.Println("sexpr " + version)
	return nil
}

// EvalCmd parses each argument and runs its RPN form.
type EvalCmd struct {
	Exprs []string `arg:"" name:"expr" help:"Expressions to evaluate"`
}

func (cmd *EvalCmd) Run(*Config) error {
	for _, src := range cmd.Exprs {
		if err := evalLine(src); err != nil {
			return err
		}
	}
	return nil
}

// ReplCmd reads expressions interactively.
type ReplCmd struct{}

func (cmd *ReplCmd) Run(cfg *Config) error {
	fmt.Printf("sexpr %s\nCtrl+D or :quit exits.\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := expandHome(cfg.History)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return nil
		}

		if err := evalLine(line); err != nil {
			color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		}
		ln.AppendHistory(line)
	}
}

// evalLine parses one expression, prints its RPN form, and, when the form
// fits the stack machine's instruction set, its value.
func evalLine(src string) error {
	out, err := sexpr.RPN(src)
	if err != nil {
		return err
	}
	v, err := rpn.Eval(out)
	if err != nil {
		// The tree serialized fine but contains letters or operators the
		// machine has no instruction for. Still show the RPN form.
		fmt.Println(color.BlueString("%s", out))
		return err
	}
	fmt.Printf("%s -> %s\n", color.BlueString("%s", out), v)
	return nil
}
