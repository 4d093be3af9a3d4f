package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/roster/internal/roster"
	"github.com/roach88/roster/internal/testutil"
)

func newTestSession(t *testing.T, store *roster.Store, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSession(store, strings.NewReader(input), out, WithLogger(logger)), out
}

func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}

func TestSession_FullSession(t *testing.T) {
	input := strings.Join([]string{
		"1", "1", "20", "Alice",
		"1", "2", "21", "Bob",
		"2",
		"3", "1",
		"3", "99",
		"4",
		"4",
		"x",
		"9",
		"0",
	}, "\n") + "\n"

	session, out := newTestSession(t, testutil.NewStore(), input)
	released, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, released)

	assertGolden(t, "full_session", out.Bytes())
}

func TestSession_CancelledInput(t *testing.T) {
	// Malformed id, then malformed age, then a valid add; input ends without 0.
	input := "1\nabc\n1\n5\n2x\n1\n7\n30\nCarol\n"

	store := testutil.NewStore()
	session, out := newTestSession(t, store, input)
	released, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, released, "records left at exit are released")

	assertGolden(t, "cancelled_input", out.Bytes())
}

func TestSession_DeleteOnEmptyDoesNotPrompt(t *testing.T) {
	session, out := newTestSession(t, testutil.NewStore(), "3\n0\n")
	_, err := session.Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "The list is empty. Nothing to delete.")
	assert.NotContains(t, text, promptDelete)
}

func TestSession_ListEmpty(t *testing.T) {
	session, out := newTestSession(t, testutil.NewStore(), "2\n0\n")
	_, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "--- STUDENT LIST (0) ---\nThe list is empty.\n")
}

func TestSession_ReleasesRemainingRecordsOnQuit(t *testing.T) {
	store := testutil.SeededStore(t,
		roster.Record{ID: 1, Age: 20, Name: "Alice"},
		roster.Record{ID: 2, Age: 21, Name: "Bob"},
	)

	session, out := newTestSession(t, store, "0\n")
	released, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, released)
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n\nMemory cleanup of 2 students done. No leaks.\n"))
	assert.Equal(t, 0, store.Len())
}

func TestSession_TruncatesLongName(t *testing.T) {
	long := strings.Repeat("z", 80)
	session, out := newTestSession(t, testutil.NewStore(), "1\n1\n20\n"+long+"\n2\n")
	_, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Name: "+strings.Repeat("z", roster.MaxNameLength)+"\n")
	assert.NotContains(t, out.String(), strings.Repeat("z", roster.MaxNameLength+1))
}

func TestSession_NameWithoutTrailingNewline(t *testing.T) {
	store := testutil.NewStore()
	session, out := newTestSession(t, store, "1\n4\n22\nDana")
	released, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, released)
	assert.Contains(t, out.String(), "Student added successfully!")
}

func TestSession_EOFInsidePromptAddsNothing(t *testing.T) {
	store := testutil.NewStore()
	session, out := newTestSession(t, store, "1\n4\n")
	released, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, released)
	assert.NotContains(t, out.String(), "Student added successfully!")
}

func TestSession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session, out := newTestSession(t, testutil.NewStore(), "1\n1\n20\nAlice\n")
	_, err := session.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, out.String(), "Memory cleanup of 0 students done.")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestSession_ReadErrorIsReturned(t *testing.T) {
	store := testutil.SeededStore(t, roster.Record{ID: 1, Age: 20, Name: "Alice"})

	out := &bytes.Buffer{}
	session := NewSession(store, failingReader{}, out, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	released, err := session.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
	assert.Equal(t, 1, released)
}

func TestInputError(t *testing.T) {
	session, _ := newTestSession(t, testutil.NewStore(), "forty\n")
	_, err := session.readInt(promptAge, "age")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "age", inputErr.Field)
	assert.Equal(t, "forty", inputErr.Input)
	assert.Contains(t, err.Error(), ErrCodeInputParse)
}

func TestSession_BlankLinesAreSkippedAtIntegerPrompts(t *testing.T) {
	store := testutil.NewStore()
	session, out := newTestSession(t, store, "\n1\n\n  \n3\n\n21\nDana\n\n2\n0\n")
	released, err := session.Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 1, released)
	assert.Contains(t, text, "ID: 3 | Age: 21 | Name: Dana")
	assert.NotContains(t, text, msgInvalidChoice)
	assert.NotContains(t, text, msgCancelled)
	assert.Equal(t, 1, strings.Count(text, promptID), "blank lines do not re-prompt")
}

func TestSession_BlankLinesThenEOF(t *testing.T) {
	session, out := newTestSession(t, testutil.NewStore(), "1\n\n\n")
	released, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, released)
	assert.Contains(t, out.String(), "\nGoodbye!\n")
}

func TestSession_RequireRecords(t *testing.T) {
	store := testutil.NewStore()
	session, _ := newTestSession(t, store, "")

	err := session.requireRecords("clear")
	require.Error(t, err)
	assert.True(t, roster.IsEmptyStore(err))
	assert.Equal(t, "EMPTY_STORE: clear: roster is empty", err.Error())

	_, _ = store.Add(1, 20, "Alice")
	assert.NoError(t, session.requireRecords("clear"))
}
