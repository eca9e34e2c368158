// Package session runs the interactive line-per-hand loop
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/hand"
)

// Sentinel ends the session, compared case-insensitively
const Sentinel = "x"

// Prompt is printed before every line is read
const Prompt = "Enter the combination of 5 cards to check, enter 'x' to terminate:"

const banner = `Poker Result Checker

The suit on the cards can be inputted as follows:
S = ♠ Spade
H = ♥ Heart
D = ♦ Diamond
C = ♣ Club

The number on the cards can be inputted as follows:
A    = 1
2-10 = 2-10
J    = 11
Q    = 12
K    = 13

The combination of 5 cards can result in one of the following "Hands":`

const inputHint = `Input of 5 cards can be entered as a comma-separated string. Here is an example of the input:
H5,S13,C7,C1,D11`

// Options controls what the session prints
type Options struct {
	Color      bool
	ShowHelp   bool
	ShowPrompt bool
	ShowDetail bool
}

// Session reads hands from in and writes verdicts to out
type Session struct {
	checker *checker.Checker
	opts    Options
	ok      *color.Color
	bad     *color.Color
	faint   *color.Color
}

// New creates a session around c
func New(c *checker.Checker, opts Options) *Session {
	s := &Session{
		checker: c,
		opts:    opts,
		ok:      color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		faint:   color.New(color.Faint),
	}
	for _, col := range []*color.Color{s.ok, s.bad, s.faint} {
		if opts.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return s
}

// Run processes one hand per line until the sentinel, EOF or ctx is done
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.opts.ShowHelp {
		table, err := HelpTable()
		if err != nil {
			return fmt.Errorf("error rendering help: %v", err)
		}
		fmt.Fprintln(out, banner)
		fmt.Fprintln(out, table)
		fmt.Fprintln(out, inputHint)
	}

	// Lines have no length limit so an oversized line is just one bad hand
	reader := bufio.NewReader(in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if s.opts.ShowPrompt {
			fmt.Fprintf(out, "\n%s\n", Prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading input: %v", err)
		}
		if err == io.EOF && line == "" {
			return nil
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.EqualFold(strings.TrimSpace(line), Sentinel) {
			return nil
		}

		fmt.Fprintf(out, "The result: %s\n", s.verdict(line))

		if err == io.EOF {
			return nil
		}
	}
}

// verdict formats the result of one input line
func (s *Session) verdict(line string) string {
	if !s.opts.ShowDetail {
		text := s.checker.Process(line)
		if text == checker.ErrorText {
			return s.bad.Sprint(text)
		}
		return s.ok.Sprint(text)
	}

	res, err := s.checker.Check(line)
	if err != nil {
		return s.bad.Sprint(checker.ErrorText)
	}

	text := s.ok.Sprint(res.Category.Label())
	if res.Detail != "" {
		text += " " + s.faint.Sprintf("(%s)", res.Detail)
	}
	return text
}

// HelpTable renders the category reference table
func HelpTable() (string, error) {
	data := pterm.TableData{{"#", "Hand", "Rule", "Example"}}
	for _, c := range hand.Categories() {
		data = append(data, []string{
			fmt.Sprint(c.Position()), c.Name(), c.Description(), c.Example(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
