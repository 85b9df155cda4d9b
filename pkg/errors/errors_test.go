// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/arthur-debert/gl-driver-switch/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_command_error",
			code:    errors.ErrUnknownCommand,
			message: "Unknown command: frobnicate",
			wantStr: "Unknown command: frobnicate",
		},
		{
			name:    "permission_error",
			code:    errors.ErrPermission,
			message: "You must be root to use this utility",
			wantStr: "You must be root to use this utility",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnsupportedDriver, "Unsupported driver: %s", "amd")

	if err.Message != "Unsupported driver: amd" {
		t.Errorf("Newf() message = %q, want %q", err.Message, "Unsupported driver: amd")
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(syscall.EACCES, errors.ErrRemove, "Unable to remove %s", "/usr/lib/libGL.so.1")

		wantStr := "Unable to remove /usr/lib/libGL.so.1: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrapped_errno_matches_fs_sentinels", func(t *testing.T) {
		err := errors.Wrap(syscall.EACCES, errors.ErrLink, "Unable to link /x")
		if !stderrors.Is(err, fs.ErrPermission) {
			t.Error("errors.Is() should see through to fs.ErrPermission")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrResolve, "Cannot read link").
		WithDetail("path", "/usr/lib/glx-provider/nvidia/libGL.so.1").
		WithDetail("library", "libGL.so.1")

	if err.Details["path"] != "/usr/lib/glx-provider/nvidia/libGL.so.1" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}

	if err.Details["library"] != "libGL.so.1" {
		t.Errorf("WithDetail() library = %v, want %v", err.Details["library"], "libGL.so.1")
	}
}

func TestWithDetailOnZeroValue(t *testing.T) {
	err := &errors.SwitchError{Code: errors.ErrLink}
	err.WithDetail("path", "/tmp")

	if err.Details["path"] != "/tmp" {
		t.Errorf("WithDetail() should initialize details, got %v", err.Details)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRemove, "error 1")
	err2 := errors.New(errors.ErrRemove, "error 2")
	err3 := errors.New(errors.ErrLink, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with SwitchError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUsage, "usage"),
			code:     errors.ErrUsage,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUsage, "usage"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrResolve, "Cannot read link"),
			code:     errors.ErrResolve,
			expected: true,
		},
		{
			name:     "non_switch_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUsage,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUsage,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "switch_error",
			err:      errors.New(errors.ErrUnsupportedDriver, "Unsupported driver: amd"),
			expected: errors.ErrUnsupportedDriver,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrLink, "Unable to link").WithDetail("library", "libEGL.so.1")

	if got := errors.GetErrorDetails(err); got["library"] != "libEGL.so.1" {
		t.Errorf("GetErrorDetails() = %v", got)
	}

	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	removeErr := errors.Wrap(rootCause, errors.ErrRemove, "Unable to remove /usr/lib/libGL.so.1")
	outer := errors.Wrap(removeErr, errors.ErrInternal, "switch failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(outer, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var switchErr *errors.SwitchError
		if stderrors.As(outer.Unwrap(), &switchErr) {
			if !errors.IsErrorCode(switchErr, errors.ErrRemove) {
				t.Error("Middle error should have ErrRemove code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(outer, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
