package solve

import (
	"io"
)

// Sink receives solved lines in input order.
type Sink interface {
	Write(Line) error
}

type SinkFunc func(Line) error

func (f SinkFunc) Write(l Line) error {
	return f(l)
}

// Text returns a sink writing the deciphered text of each line to w.
func Text(w io.Writer) Sink {
	return SinkFunc(func(l Line) error {
		_, err := io.WriteString(w, l.Text)
		return err
	})
}

// Tee returns a sink passing each line to all sinks, stopping at the first error.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(l Line) error {
		for _, s := range sinks {
			if err := s.Write(l); err != nil {
				return err
			}
		}
		return nil
	})
}
