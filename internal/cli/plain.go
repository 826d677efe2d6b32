package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/idilsaglam/situs/internal/model"
	"github.com/idilsaglam/situs/internal/ui"
)

// RunPlain is the line-oriented loop used for pipes and --plain. End of
// input behaves like exit.
func RunPlain(in io.Reader, out io.Writer, s *Session) error {
	fmt.Fprintln(out, ui.Welcome(model.FormatDate(s.State().Today)))

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		r := s.Handle(sc.Text())
		if text := r.Render(); text != "" {
			fmt.Fprintln(out, text)
		}
		if r.Exit {
			fmt.Fprintln(out, ui.Goodbye())
			return r.Err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	r := s.Handle("exit")
	if text := r.Render(); text != "" {
		fmt.Fprintln(out, text)
	}
	fmt.Fprintln(out, ui.Goodbye())
	return r.Err
}
