package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/suderio/emodice/internal/parser"
)

// errQuit ends a game early at the player's request.
var errQuit = errors.New("player quit")

const rule = "============================================================"

// prompter is the line-oriented front end shared by the plain games.
type prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		delay: 80 * time.Millisecond,
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *prompter) banner(title string) {
	p.printf("%s\n%s\n%s\n", rule, title, rule)
}

// ask prints prompt and returns the next trimmed line. A closed input is io.EOF.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) pause(prompt string) error {
	line, err := p.ask("\n" + prompt)
	if err != nil {
		return err
	}
	if isQuit(line) {
		return errQuit
	}
	return nil
}

// askNumber asks until the answer is an integer in min..max.
func (p *prompter) askNumber(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		if isQuit(line) {
			return 0, errQuit
		}
		n, err := parser.ParseNumber(line)
		if err != nil {
			p.println("ERROR: Please enter a valid number!")
			continue
		}
		if n < min || n > max {
			p.printf("ERROR: Must be between %d and %d\n", min, max)
			continue
		}
		return n, nil
	}
}

// confirm asks a yes/no question until it gets an answer.
func (p *prompter) confirm(prompt string) (bool, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return false, err
		}
		yes, err := parser.ParseConfirm(line)
		if err != nil {
			p.println("Please answer y or n")
			continue
		}
		return yes, nil
	}
}

// rolling shows a short spinner before dice hit the table.
func (p *prompter) rolling() {
	if p.delay <= 0 {
		p.println("\n🎲 Rolling...")
		return
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("🎲 Rolling..."),
		progressbar.OptionClearOnFinish(),
	)
	for i := 0; i < 6; i++ {
		_ = bar.Add(1)
		time.Sleep(p.delay)
	}
	_ = bar.Finish()
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
