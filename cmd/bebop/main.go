package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	bebop "github.com/hgm-king/bebop-lang"
	"github.com/hgm-king/bebop-lang/markdown"
)

const (
	appName     = "bebop"
	historyFile = ".bebop_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

var banner = fmt.Sprintf("bebop %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type env to dump the environment.", bebop.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(nil))
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "md":
		os.Exit(cmdMd(os.Args[2:]))
	case "version":
		fmt.Println(bebop.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`bebop %s

Usage:
  %s [repl]                      Start the REPL (the default).
  %s run <file.bb>               Evaluate a source file and print the result.
  %s md [-run|-html] <file.md>   Transpile a markdown document to bebop
                                 source; -run evaluates it down to HTML,
                                 -html renders it without evaluating.
  %s version                     Print the version.

`, bebop.Version, appName, appName, appName, appName)
}

// newEnv builds the root environment with the prelude loaded. The prelude is
// compiled in, so a failure here is a build defect rather than user error.
func newEnv() (*bebop.Env, error) {
	env := bebop.NewRootEnv()
	if err := bebop.LoadPrelude(env); err != nil {
		return nil, fmt.Errorf("prelude: %w", err)
	}
	return env, nil
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.bb>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	env, rtErr := newEnv()
	if rtErr != nil {
		fmt.Fprintln(os.Stderr, red(rtErr.Error()))
		return 1
	}

	v, err := bebop.EvalSource(env, string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, bebop.WrapParseError(err, string(src)).Error())
		return 1
	}
	fmt.Println(bebop.FormatValue(v))
	return 0
}

// -----------------------------------------------------------------------------
// md
// -----------------------------------------------------------------------------

func cmdMd(args []string) int {
	fs := flag.NewFlagSet("md", flag.ContinueOnError)
	run := fs.Bool("run", false, "evaluate the transpiled document and print the resulting HTML")
	html := fs.Bool("html", false, "render the markdown straight to HTML without evaluating")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s md [-run|-html] <file.md>\n", appName)
		return 2
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	if *html {
		out, err := markdown.ToHTML(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", appName, file, err)
			return 1
		}
		fmt.Print(out)
		return 0
	}

	code, err := markdown.ToLisp(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %v\n", appName, file, err)
		return 1
	}
	if !*run {
		fmt.Print(code)
		return 0
	}

	env, rtErr := newEnv()
	if rtErr != nil {
		fmt.Fprintln(os.Stderr, red(rtErr.Error()))
		return 1
	}

	// The transpiled forms evaluate individually; a leading concat folds
	// them into the one HTML string the document stands for.
	program := "concat\n" + code
	v, err := bebop.EvalSource(env, program)
	if err != nil {
		fmt.Fprintln(os.Stderr, bebop.WrapParseError(err, program).Error())
		return 1
	}
	fmt.Println(bebop.FormatValue(v))
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	env, rtErr := newEnv()
	if rtErr != nil {
		fmt.Fprintln(os.Stderr, red(rtErr.Error()))
		return 1
	}

	for {
		code, err := readByParseProbe(ln, promptMain, promptCont)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println("CTRL-C")
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println("CTRL-D")
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		out := bebop.Run(env, code)
		if strings.HasPrefix(out, "Error:") {
			fmt.Fprintln(os.Stderr, red(out))
		} else {
			fmt.Println(blue(out))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe reads lines until the accumulated input parses or fails
// with something other than an unclosed construct, so multi-line forms can be
// typed naturally.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, error) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if err != nil {
			return "", err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := bebop.Parse(src); perr != nil && perr.Incomplete() {
			continue
		}
		return src, nil
	}
}
