package fuzztrie

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a query argument violates its
	// documented precondition: a negative correction budget, or a
	// non-positive minimum match length.
	ErrInvalidArgument = errors.New("fuzztrie: invalid argument")

	// ErrImmutable is returned by Add and Remove when the Trie was built
	// with immutable=true.
	ErrImmutable = errors.New("fuzztrie: trie is immutable")
)

func invalidArgument(op, detail string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s", op, detail)
}

func immutableViolation(op string) error {
	return errors.Wrapf(ErrImmutable, "%s", op)
}
