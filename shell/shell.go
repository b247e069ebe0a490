// Package shell implements the interactive digest loop.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/history"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/sha256"
	"massnet.org/shadigest/source"
)

const prompt = "Enter 'text: <your_text>' or 'file: <file_path>'. Type 'exit' to quit: "

// Shell reads requests line by line and writes one answer per request.
type Shell struct {
	digester *source.Digester
	ledger   *history.Store
	in       *bufio.Reader
	out      io.Writer
}

// New returns a Shell reading from in and writing to out. ledger may be nil.
func New(digester *source.Digester, ledger *history.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		digester: digester,
		ledger:   ledger,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run prompts and answers until the user exits, input ends or ctx is done.
// Errors in a single request are printed and the loop continues. End of
// input stops the loop without error; any other read failure is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintf(s.out, "\n%s\n", prompt)
		line, err := s.readLine()
		if err != nil {
			if !errors.CodeOf(err).Recoverable() {
				logging.VPrint(logging.DEBUG, "input closed",
					logging.LogFormat{"code": errors.CodeOf(err), "err": err})
				return nil
			}
			return err
		}
		if IsExit(line) {
			return nil
		}

		if err := s.Handle(line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// readLine returns the next trimmed line. A last line without newline is
// returned as is; the read after it reports ErrCodeUnexpectedEndOfInput.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
		return strings.TrimSpace(line), nil
	case err != io.EOF:
		return "", errors.Wrap(errors.ErrCodeReadFailure, err, "read input")
	case line != "":
		return strings.TrimSpace(line), nil
	default:
		return "", errors.New(errors.ErrCodeUnexpectedEndOfInput, "Unexpected end of input.")
	}
}

// Handle digests one input line and prints the result.
func (s *Shell) Handle(line string) error {
	req, err := Parse(line)
	if err != nil {
		return err
	}

	var (
		hash sha256.Hash
		size int
	)
	switch req.Kind {
	case source.KindFile:
		fd, err := s.digester.File(req.Payload)
		if err != nil {
			return err
		}
		hash, size = fd.Hash, int(fd.Size)
		logging.VPrint(logging.DEBUG, "file digested",
			logging.LogFormat{"path": fd.Path, "size": fd.Size, "cached": fd.Cached})
	default:
		hash, err = s.digester.Text(req.Payload)
		if err != nil {
			return err
		}
		size = len(req.Payload)
	}

	fmt.Fprintf(s.out, "%s hash of %s is: %s\n", s.digester.Name(), req.Kind, hash)
	s.record(req, hash, size)
	return nil
}

func (s *Shell) record(req *Request, hash sha256.Hash, size int) {
	if s.ledger == nil {
		return
	}
	rec := &history.Record{
		Kind:   req.Kind,
		Source: req.Payload,
		Func:   s.digester.Name(),
		Digest: hash,
		Size:   size,
	}
	if err := s.ledger.Append(rec); err != nil {
		logging.CPrint(logging.WARN, "failed to record digest",
			logging.LogFormat{"err": err, "code": errors.ErrCodeHistory})
	}
}
