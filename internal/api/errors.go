package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("token expired or revoked (run: tada auth login)")
	ErrTimeout         = errors.New("request timed out")
	ErrInvalidResponse = errors.New("invalid response")
)

// StatusCode reports the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// wrapError maps transport and status errors onto the package sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		if msg := strings.TrimSpace(gerr.Body); msg != "" && gerr.Message == "" {
			return fmt.Errorf("backend error: HTTP %d: %s: %w", gerr.Code, truncate(msg, 120), err)
		}
		return fmt.Errorf("backend error: %w", err)
	}

	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
