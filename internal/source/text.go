package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const promptText = "Input password"

type fileSource struct {
	f  *os.File
	sc *bufio.Scanner
}

func openFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	return &fileSource{f: f, sc: sc}, nil
}

func (s *fileSource) Scan() bool    { return s.sc.Scan() }
func (s *fileSource) Token() string { return s.sc.Text() }
func (s *fileSource) Err() error    { return s.sc.Err() }
func (s *fileSource) Close() error  { return s.f.Close() }

// sliceSource serves tokens that were read up front.
type sliceSource struct {
	tokens []string
	cur    string
}

func (s *sliceSource) Scan() bool {
	if len(s.tokens) == 0 {
		return false
	}
	s.cur, s.tokens = s.tokens[0], s.tokens[1:]
	return true
}

func (s *sliceSource) Token() string { return s.cur }
func (s *sliceSource) Err() error    { return nil }
func (s *sliceSource) Close() error  { return nil }

// newStdinSource reads the first line that holds at least one token; blank
// lines before it are skipped. The prompt is only shown when in is an
// interactive terminal.
func newStdinSource(in io.Reader, prompt io.Writer) (Source, error) {
	if prompt != nil && isTerminal(in) {
		fmt.Fprintln(prompt, promptText)
	}
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if tokens := strings.Fields(line); len(tokens) > 0 || err != nil {
			return &sliceSource{tokens: tokens}, nil
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
