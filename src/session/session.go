package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sortdemo/src/sort"
)

const (
	sizePrompt        = "Enter array size: "
	sizeRetryPrompt   = "Please enter a valid size: "
	choicePrompt      = "\nChoose a sorting function (1-MergeSort, 2-QuickSort, 3-BogoSort, 4-Exit): "
	choiceRetryPrompt = "Invalid input. Please enter an integer (1-MergeSort, 2-QuickSort, 3-BogoSort, 4-Exit): "
	defaultNotice     = "Invalid choice! Using QuickSort by default.\n"
	separator         = "\n------------------------------\n"
)

// Session is the interactive menu loop. It owns one array per iteration.
type Session struct {
	in     *tokenReader
	out    io.Writer
	rng    sort.Source
	now    func() time.Time
	logger logrus.Ext1FieldLogger
}

type Option func(*Session)

// WithClock replaces time.Now, which brackets every sort call.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLogger(logger logrus.Ext1FieldLogger) Option {
	return func(s *Session) { s.logger = logger }
}

func New(in io.Reader, out io.Writer, rng sort.Source, opts ...Option) *Session {
	s := &Session{
		in:     newTokenReader(in),
		out:    out,
		rng:    rng,
		now:    time.Now,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user picks Exit, the input ends, or ctx is done.
// Exit and end of input both return nil. A waiting prompt is abandoned
// when ctx is done; a running sort is not. Run is meant to be called once.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.in.start(ctx)

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.iterate(ctx, round)
		if errors.Is(err, sort.ErrExit) {
			s.logger.Debugf("exit requested after %d rounds", round-1)
			return nil
		}
		if errors.Is(err, io.EOF) {
			s.logger.Debugf("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) iterate(ctx context.Context, round int) error {
	size, err := s.readSize(ctx)
	if err != nil {
		return err
	}
	arr := sort.RandomArray(s.rng, size)
	if err := s.printArray("New array: ", arr); err != nil {
		return err
	}

	choice, err := s.readChoice(ctx)
	if err != nil {
		return err
	}
	if choice == sort.ExitChoice {
		return sort.ErrExit
	}
	if !choice.Known() {
		if err := s.print(defaultNotice); err != nil {
			return err
		}
	}

	start := s.now()
	if err := sort.Run(choice, arr, s.rng); err != nil {
		return err
	}
	elapsed := s.now().Sub(start)

	s.logger.WithFields(logrus.Fields{
		"round":     round,
		"size":      size,
		"algorithm": choice.String(),
	}).Debugf("sorted in %s", elapsed)

	if err := s.print(fmt.Sprintf("\nTime taken: %s milliseconds\n", FormatMillis(elapsed))); err != nil {
		return err
	}
	if err := s.printArray("Sorted array: ", arr); err != nil {
		return err
	}
	return s.print(separator)
}

func (s *Session) readSize(ctx context.Context) (int, error) {
	if err := s.print(sizePrompt); err != nil {
		return 0, err
	}
	for {
		tok, err := s.in.next(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "read array size")
		}
		size, rest, err := ParseSize(tok)
		if err == nil {
			s.in.unread(rest)
			return size, nil
		}
		s.logger.Tracef("rejected size %q: %v", tok, err)
		s.in.discard()
		if err := s.print(sizeRetryPrompt); err != nil {
			return 0, err
		}
	}
}

func (s *Session) readChoice(ctx context.Context) (sort.Choice, error) {
	if err := s.print(choicePrompt); err != nil {
		return 0, err
	}
	for {
		tok, err := s.in.next(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "read sorting choice")
		}
		choice, rest, err := ParseMenuChoice(tok)
		if err == nil {
			s.in.unread(rest)
			return choice, nil
		}
		s.logger.Tracef("rejected choice %q: %v", tok, err)
		s.in.discard()
		if err := s.print(choiceRetryPrompt); err != nil {
			return 0, err
		}
	}
}

func (s *Session) print(str string) error {
	_, err := io.WriteString(s.out, str)
	return errors.Wrap(err, "write output")
}

func (s *Session) printArray(label string, arr sort.IntArray) error {
	if err := s.print(label); err != nil {
		return err
	}
	return errors.Wrap(sort.WriteArray(s.out, arr), "write output")
}

// FormatMillis truncates d to whole microseconds and renders it as
// milliseconds with three decimals.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}
