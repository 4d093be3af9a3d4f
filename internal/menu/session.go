// Package menu implements the interactive text menu over a roster.Store.
//
// The menu is a thin caller: each choice maps onto exactly one store
// operation, and every error is reported to the user before the loop
// continues. Nothing here is fatal.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roach88/roster/internal/roster"
)

// Menu choices.
const (
	ChoiceQuit   = 0
	ChoiceAdd    = 1
	ChoiceList   = 2
	ChoiceDelete = 3
	ChoiceClear  = 4
)

// Session drives one interactive run against a store.
type Session struct {
	store  *roster.Store
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session reading commands from in and writing to out.
// The session takes ownership of store and closes it when Run returns.
func NewSession(store *roster.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user quits, input ends, or ctx is cancelled.
// It then closes the store and returns the number of records released.
//
// End of input is treated like choosing 0. A read error other than io.EOF
// is returned after the store has been released.
func (s *Session) Run(ctx context.Context) (int, error) {
	err := s.loop(ctx)

	released := s.store.Close()
	fmt.Fprintf(s.out, msgCleanup, released)
	s.logger.Info("roster released", "records", released)

	if errors.Is(err, io.EOF) {
		err = nil
	}
	return released, err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menuText)
		choice, err := s.readInt(promptChoice, "choice")
		if err != nil {
			var inputErr *InputError
			if errors.As(err, &inputErr) {
				s.logger.Debug("rejected choice", "error", err)
				fmt.Fprint(s.out, msgInvalidChoice)
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprint(s.out, "\n"+msgGoodbye)
			}
			return err
		}

		s.logger.Debug("menu choice", "choice", choice)
		if choice == ChoiceQuit {
			fmt.Fprint(s.out, msgGoodbye)
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprint(s.out, "\n"+msgGoodbye)
			}
			return err
		}
	}
}

// dispatch runs one menu choice. Only read failures are returned; every
// roster or parse error is reported to the user here.
func (s *Session) dispatch(choice int) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceList:
		s.list()
	case ChoiceDelete:
		return s.delete()
	case ChoiceClear:
		s.clear()
	default:
		fmt.Fprint(s.out, msgUnrecognized)
	}
	return nil
}

func (s *Session) add() error {
	fmt.Fprint(s.out, headerAdd)

	id, err := s.readInt(promptID, "id")
	if err != nil {
		return s.cancelOnInputError(err)
	}
	age, err := s.readInt(promptAge, "age")
	if err != nil {
		return s.cancelOnInputError(err)
	}

	fmt.Fprint(s.out, promptName)
	name, err := s.readLine()
	if err != nil && (name == "" || !errors.Is(err, io.EOF)) {
		return err
	}

	if _, addErr := s.store.Add(id, age, name); addErr != nil {
		s.logger.Warn("add failed", "id", id, "error", addErr)
		fmt.Fprint(s.out, msgAllocFailed)
		return err
	}
	fmt.Fprint(s.out, msgAdded)
	return err
}

func (s *Session) list() {
	records := s.store.List()
	fmt.Fprintf(s.out, headerList, len(records))
	if len(records) == 0 {
		fmt.Fprint(s.out, msgListEmpty)
		return
	}
	for _, r := range records {
		fmt.Fprintln(s.out, r.String())
	}
}

func (s *Session) delete() error {
	if err := s.requireRecords("delete"); roster.IsEmptyStore(err) {
		s.logger.Debug("delete skipped", "error", err)
		fmt.Fprint(s.out, msgNothingDelete)
		return nil
	}

	fmt.Fprint(s.out, headerDelete)
	id, err := s.readInt(promptDelete, "id")
	if err != nil {
		return s.cancelOnInputError(err)
	}

	if _, err := s.store.DeleteByID(id); err != nil {
		s.logger.Debug("delete failed", "id", id, "error", err)
		fmt.Fprintf(s.out, msgNotFound, id)
		return nil
	}
	fmt.Fprintf(s.out, msgDeleted, id)
	return nil
}

func (s *Session) clear() {
	if err := s.requireRecords("clear"); roster.IsEmptyStore(err) {
		s.logger.Debug("clear skipped", "error", err)
		fmt.Fprint(s.out, msgAlreadyEmpty)
		return
	}
	fmt.Fprintf(s.out, msgCleared, s.store.Clear())
}

// requireRecords returns an EMPTY_STORE error when there is nothing to
// remove. Delete and clear short-circuit on it instead of prompting.
func (s *Session) requireRecords(op string) error {
	if s.store.Len() == 0 {
		return &roster.Error{Code: roster.ErrCodeEmptyStore, Op: op}
	}
	return nil
}

// cancelOnInputError reports a parse failure and swallows it. Any other
// error (end of input, read failure) is passed back to stop the loop.
func (s *Session) cancelOnInputError(err error) error {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		s.logger.Debug("operation cancelled", "error", err)
		fmt.Fprint(s.out, msgCancelled)
		return nil
	}
	return err
}

// readInt prints prompt and parses the next non-blank line as an integer.
// Blank lines are skipped without re-prompting. A malformed line has already
// been consumed when the InputError is returned.
func (s *Session) readInt(prompt, field string) (int, error) {
	fmt.Fprint(s.out, prompt)

	var text string
	for {
		line, err := s.readLine()
		text = strings.TrimSpace(line)
		if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
			return 0, err
		}
		if text != "" {
			break
		}
	}

	n, parseErr := strconv.Atoi(text)
	if parseErr != nil {
		return 0, &InputError{Field: field, Input: text, Err: parseErr}
	}
	return n, nil
}

// readLine returns the next line without its terminator. At end of input it
// returns whatever was read along with io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
