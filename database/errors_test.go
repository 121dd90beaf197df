package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestWrapErr(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"no documents", mongo.ErrNoDocuments, utils.ErrNotFound},
		{"duplicate key", dup, utils.ErrConflict},
		{"network", errors.New("connection reset by peer"), utils.ErrUpstream},
		{"timeout", context.DeadlineExceeded, utils.ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapErr("find booking", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("WrapErr(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}

	if WrapErr("noop", nil) != nil {
		t.Fatal("nil stays nil")
	}
	// The driver error stays reachable for callers that need it.
	if got := WrapErr("find", context.DeadlineExceeded); !errors.Is(got, context.DeadlineExceeded) {
		t.Fatalf("cause lost: %v", got)
	}
}

func TestOpContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, done := OpContext(parent, 0)
	defer done()

	deadline, ok := ctx.Deadline()
	if !ok || time.Until(deadline) > DefaultTimeout {
		t.Fatalf("deadline %v not bounded by DefaultTimeout", deadline)
	}

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelling the request must cancel the storage call")
	}
}
