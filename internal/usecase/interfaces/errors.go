package interfaces

import "errors"

// Store-level failures shared by every repository backend.
var (
	// ErrForeignKeyViolation is returned when a write references a missing parent.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrEmailTaken is returned when a customer write collides on email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrConcurrentUpdate is returned when an optimistic write lost every retry.
	ErrConcurrentUpdate = errors.New("concurrent update")
)
