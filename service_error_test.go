package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/Leihyn/Sentiment/deck"
)

func TestWrapOperationError(t *testing.T) {
	if WrapOperationError("write pdf", nil) != nil {
		t.Error("nil error should stay nil")
	}
	err := WrapOperationError("write pdf", fs.ErrPermission)
	if err.Error() != "failed to write pdf: "+fs.ErrPermission.Error() {
		t.Errorf("unexpected message %q", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("cause lost")
	}

	err = WrapOperationErrorf("write %s", fs.ErrExist, "deck.pptx")
	if !strings.HasPrefix(err.Error(), "failed to write deck.pptx: ") || !errors.Is(err, fs.ErrExist) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestServiceErrorKeepsValidationError(t *testing.T) {
	verr := &deck.ValidationError{Issues: []deck.Issue{{Slide: -1, Element: -1, Severity: deck.SeverityError, Message: "deck has no slides"}}}
	err := WrapError("DeckFacadeService", "Validate", verr)

	if !IsValidationError(err) {
		t.Fatal("validation error not found through ServiceError")
	}
	var se *ServiceError
	if !errors.As(err, &se) || se.Service != "DeckFacadeService" || se.Operation != "Validate" {
		t.Fatalf("unexpected service error %#v", err)
	}
	if IsValidationError(WrapError("x", "y", fs.ErrNotExist)) {
		t.Error("plain error reported as validation error")
	}
}

func TestServiceErrorFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		service := rapid.String().Draw(t, "service")
		operation := rapid.String().Draw(t, "operation")
		msg := rapid.String().Draw(t, "msg")

		if WrapError(service, operation, nil) != nil {
			t.Fatal("WrapError(nil) should return nil")
		}

		cause := errors.New(msg)
		err := WrapError(service, operation, cause)
		if want := fmt.Sprintf("[%s.%s] %s", service, operation, msg); err.Error() != want {
			t.Fatalf("Error() = %q, want %q", err.Error(), want)
		}
		if !errors.Is(err, cause) {
			t.Fatal("errors.Is lost the cause")
		}

		outer := WrapOperationError(operation, err)
		var se *ServiceError
		if !errors.As(outer, &se) || se.Err != cause {
			t.Fatal("ServiceError not reachable through operation wrapping")
		}
	})
}
