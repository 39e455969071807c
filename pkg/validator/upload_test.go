package validator

import (
	"errors"
	"testing"
)

func TestValidateFileSize(t *testing.T) {
	cfg := NewUploadConfig(100, nil)

	if err := cfg.ValidateFileSize(0); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile for zero size, got %v", err)
	}
	if err := cfg.ValidateFileSize(-1); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile for negative size, got %v", err)
	}
	if err := cfg.ValidateFileSize(101); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if err := cfg.ValidateFileSize(100); err != nil {
		t.Fatalf("expected size at limit to pass, got %v", err)
	}
}

func TestValidateMimeType(t *testing.T) {
	cfg := NewUploadConfig(100, []string{"image/png", "Text/Plain"})

	if err := cfg.ValidateMimeType("image/png"); err != nil {
		t.Fatalf("expected image/png allowed, got %v", err)
	}
	if err := cfg.ValidateMimeType("text/plain; charset=utf-8"); err != nil {
		t.Fatalf("expected parameterized type allowed, got %v", err)
	}
	if err := cfg.ValidateMimeType("application/x-evil"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if err := cfg.ValidateMimeType(""); !errors.Is(err, ErrMissingMimeType) {
		t.Fatalf("expected ErrMissingMimeType, got %v", err)
	}
}

func TestEmptyWhitelistAllowsEverything(t *testing.T) {
	cfg := NewUploadConfig(100, nil)
	if err := cfg.ValidateMimeType("application/x-anything"); err != nil {
		t.Fatalf("expected open whitelist to allow any type, got %v", err)
	}
}
