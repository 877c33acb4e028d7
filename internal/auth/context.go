package auth

import (
	"context"
	"fmt"
)

type ctxKey int

const subjectCtxKey ctxKey = iota + 1

// Subject identifies a verified caller and the roles granted to it.
type Subject struct {
	ID    string
	Roles []Role
}

// ContextWithSubject returns a new context containing the verified caller.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithSubject(baseCtx context.Context, subject Subject) context.Context {
	return context.WithValue(baseCtx, subjectCtxKey, subject)
}

// SubjectFromContext extracts the verified caller from the context.
func SubjectFromContext(ctx context.Context) (Subject, error) {
	val := ctx.Value(subjectCtxKey)

	if val == nil {
		return Subject{}, fmt.Errorf("no subject in context")
	}

	subject, ok := val.(Subject)
	if !ok {
		return Subject{}, fmt.Errorf("subject has unexpected type: %T", val)
	}

	return subject, nil
}
