package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineReader prints a prompt and reads one line per call.
// It implements battle.LineSource for the human combatant.
type lineReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

func newLineReader(r io.Reader, w io.Writer, prompt string) *lineReader {
	return &lineReader{r: bufio.NewReader(r), w: w, prompt: prompt}
}

// ReadLine asks with the coordinate prompt.
func (l *lineReader) ReadLine() (string, error) {
	return l.ask(l.prompt)
}

// ask prints prompt and returns the next line without its terminator.
// A final line without a newline is still returned; io.EOF follows on the next call.
func (l *lineReader) ask(prompt string) (string, error) {
	fmt.Fprint(l.w, prompt)
	line, err := l.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	fmt.Fprintln(l.w)
	return strings.TrimRight(line, "\r\n"), nil
}
